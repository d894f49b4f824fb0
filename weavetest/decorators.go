package weavetest

import "github.com/iov-one/xregister"

// Decorator is a mock implementation of the xregister.Decorator interface.
//
// Set DeliverErr to force error response. If the error attribute is not set
// then wrapped handler method is called and its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ xregister.Decorator = (*Decorator)(nil)

func (d *Decorator) Deliver(ctx xregister.Context, db xregister.KVStore, origin xregister.Origin, call xregister.Call, next xregister.Handler) (*xregister.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, origin, call)
}

func (d *Decorator) CallCount() int {
	return d.deliverCall
}
