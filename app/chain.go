package app

import (
	"reflect"

	"github.com/iov-one/xregister"
)

/*
Decorators is a stack of decorators that is not bound to a handler yet.
The first decorator of the stack is the outermost one:

	app.ChainDecorators(
	  app.NewLogging(),
	  app.NewRecovery(),
	).WithHandler(router.Handler(index))

logs every call, including the ones that panicked.
*/
type Decorators struct {
	stack []xregister.Decorator
}

// ChainDecorators returns a stack of given decorators. Nil decorators are
// skipped.
func ChainDecorators(ds ...xregister.Decorator) Decorators {
	return Decorators{}.Chain(ds...)
}

// Chain returns a new stack with given decorators appended. The receiver is
// not modified.
func (d Decorators) Chain(ds ...xregister.Decorator) Decorators {
	stack := make([]xregister.Decorator, 0, len(d.stack)+len(ds))
	stack = append(stack, d.stack...)
	for _, dec := range ds {
		if !isNilDecorator(dec) {
			stack = append(stack, dec)
		}
	}
	return Decorators{stack: stack}
}

func isNilDecorator(d xregister.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler binds the stack to h.
func (d Decorators) WithHandler(h xregister.Handler) xregister.Handler {
	for i := len(d.stack) - 1; i >= 0; i-- {
		h = decorated{dec: d.stack[i], next: h}
	}
	return h
}

// decorated is a handler run through one decorator. It weighs as much as
// the handler, decorators are free.
type decorated struct {
	dec  xregister.Decorator
	next xregister.Handler
}

var _ xregister.Handler = decorated{}

func (s decorated) Weight() uint64 {
	return s.next.Weight()
}

func (s decorated) Deliver(ctx xregister.Context, db xregister.KVStore, origin xregister.Origin, call xregister.Call) (*xregister.DeliverResult, error) {
	return s.dec.Deliver(ctx, db, origin, call, s.next)
}
