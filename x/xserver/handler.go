package xserver

import (
	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/orm"
)

// registerWeight is the cost of recording a single name. Client chains
// must allow at least this much remote weight.
const registerWeight = 10_000

// RegisterRoutes registers the register method at given call index. The
// index must be the one client chains are configured with.
func RegisterRoutes(r xregister.Registry, index xregister.CallIndex) {
	r.Handle(index, NewRegisterHandler())
}

// NewRegisterHandler returns a handler recording names sent by sibling
// chains.
func NewRegisterHandler() xregister.Handler {
	return &registerHandler{bucket: NewRegistrationBucket()}
}

type registerHandler struct {
	bucket orm.ModelBucket
}

var _ xregister.Handler = (*registerHandler)(nil)

func (h *registerHandler) Weight() uint64 {
	return registerWeight
}

func (h *registerHandler) Deliver(ctx xregister.Context, db xregister.KVStore, origin xregister.Origin, call xregister.Call) (*xregister.DeliverResult, error) {
	source, err := xregister.EnsureSiblingChain(origin)
	if err != nil {
		return nil, err
	}

	var msg XRegisterMsg
	if err := xregister.LoadMsg(call, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	if err := h.bucket.Put(db, msg.Account.Bytes(), &Registration{Name: msg.Name}); err != nil {
		return nil, errors.Wrap(err, "cannot store registration")
	}
	xregister.GetLogger(ctx).Debug("name registered", "source", source, "account", msg.Account)

	return &xregister.DeliverResult{
		Events: []xregister.Event{
			NameRegistered{Source: source, Account: msg.Account, Name: msg.Name},
		},
	}, nil
}
