package weavetest

import "github.com/iov-one/xregister"

// Handler is a mock implementation of the xregister.Handler interface.
//
// Set DeliverErr to force an error response. Set Panic to make the handler
// panic with given value. Each call is counted, regardless of its result.
type Handler struct {
	// Cost is returned by the Weight method.
	Cost uint64

	deliverCall   int
	DeliverResult xregister.DeliverResult
	DeliverErr    error
	// Panic if not nil is the value the Deliver method panics with.
	Panic interface{}

	// Write if set is stored under the Key by each Deliver call, even
	// when an error is returned.
	Key, Write []byte

	lastOrigin xregister.Origin
	lastCall   xregister.Call
}

var _ xregister.Handler = (*Handler)(nil)

func (h *Handler) Weight() uint64 {
	return h.Cost
}

func (h *Handler) Deliver(ctx xregister.Context, db xregister.KVStore, origin xregister.Origin, call xregister.Call) (*xregister.DeliverResult, error) {
	h.deliverCall++
	h.lastOrigin = origin
	h.lastCall = call

	if h.Write != nil {
		if err := db.Set(h.Key, h.Write); err != nil {
			return nil, err
		}
	}
	if h.Panic != nil {
		panic(h.Panic)
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// CallCount returns the number of Deliver calls.
func (h *Handler) CallCount() int {
	return h.deliverCall
}

// LastOrigin returns the origin of the most recent Deliver call.
func (h *Handler) LastOrigin() xregister.Origin {
	return h.lastOrigin
}

// LastCall returns the call of the most recent Deliver call.
func (h *Handler) LastCall() xregister.Call {
	return h.lastCall
}
