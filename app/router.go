package app

import (
	"fmt"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
)

// Router allows us to register many handlers with different call indexes
// and then direct each call to the proper handler.
//
// The table is built at startup and must not be modified once the runtime
// executes calls.
type Router struct {
	routes map[xregister.CallIndex]xregister.Handler
}

var _ xregister.Registry = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[xregister.CallIndex]xregister.Handler, 4),
	}
}

// Handle adds a new Handler for the given call index. This function panics
// if a handler for given index is already registered.
func (r *Router) Handle(index xregister.CallIndex, h xregister.Handler) {
	if _, ok := r.routes[index]; ok {
		panic(fmt.Sprintf("re-registering route: %s", index))
	}
	r.routes[index] = h
}

// Handler returns the handler registered for given call index. If there
// is none, a handler that rejects every call as malformed is returned.
func (r *Router) Handler(index xregister.CallIndex) xregister.Handler {
	if h, ok := r.routes[index]; ok {
		return h
	}
	return notFoundHandler(index)
}

// Routes returns the number of registered handlers.
func (r *Router) Routes() int {
	return len(r.routes)
}

// notFoundHandler always returns ErrMalformedEnvelope.
type notFoundHandler xregister.CallIndex

var _ xregister.Handler = notFoundHandler{}

func (notFoundHandler) Weight() uint64 {
	return 0
}

func (h notFoundHandler) Deliver(xregister.Context, xregister.KVStore, xregister.Origin, xregister.Call) (*xregister.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrMalformedEnvelope, "no handler for call %s", xregister.CallIndex(h))
}
