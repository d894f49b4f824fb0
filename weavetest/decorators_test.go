package weavetest

import (
	"testing"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
)

func TestSuccessfulDecorator(t *testing.T) {
	var (
		d Decorator
		h Handler
	)

	_, _ = d.Deliver(nil, nil, nil, nil, &h)
	assertHCounts(t, &h, 1)
	assertDCounts(t, &d, 1)
}

func TestDecoratorWithError(t *testing.T) {
	d := Decorator{
		DeliverErr: errors.ErrNotFound,
	}

	// When using an error returning decorator, handler is never called.
	// Otherwise using nil would panic.
	var handler xregister.Handler = nil

	_, err := d.Deliver(nil, nil, nil, nil, handler)
	if want := errors.ErrNotFound; !want.Is(err) {
		t.Errorf("want %q, got %q", want, err)
	}
}

// nolint
func TestDecoratorCallCount(t *testing.T) {
	var d Decorator

	assertDCounts(t, &d, 0)

	d.Deliver(nil, nil, nil, nil, &Handler{})
	assertDCounts(t, &d, 1)

	// Failing counter must increment as well.
	d.DeliverErr = errors.ErrNotFound

	d.Deliver(nil, nil, nil, nil, &Handler{})
	assertDCounts(t, &d, 2)
}

func assertDCounts(t *testing.T, d *Decorator, wantDeliver int) {
	t.Helper()
	if got := d.CallCount(); got != wantDeliver {
		t.Errorf("want %d delivers, got %d", wantDeliver, got)
	}
}
