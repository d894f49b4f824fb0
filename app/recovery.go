package app

import (
	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
)

// Recovery turns a panicking call into a failed one. The runtime then
// discards the writes of the call like for any other failure.
type Recovery struct{}

var _ xregister.Decorator = Recovery{}

// NewRecovery returns a Recovery decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Deliver returns ErrPanic if next panics.
func (Recovery) Deliver(ctx xregister.Context, db xregister.KVStore, origin xregister.Origin, call xregister.Call, next xregister.Handler) (_ *xregister.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, origin, call)
}
