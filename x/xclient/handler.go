package xclient

import (
	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/envelope"
	"github.com/iov-one/xregister/errors"
	"github.com/iov-one/xregister/xcm"
)

// registerNameWeight is the local cost of a registration request. The
// remote execution is paid separately, up to MaxRemoteWeight.
const registerNameWeight = 25_000

// RegisterRoutes registers the register method at given call index.
// Requests are sent to the server chain with given transport.
func RegisterRoutes(r xregister.Registry, index xregister.CallIndex, sender xcm.Sender) {
	r.Handle(index, NewRegisterNameHandler(sender))
}

// NewRegisterNameHandler returns a handler sending registration requests
// of local accounts to the configured server chain.
func NewRegisterNameHandler(sender xcm.Sender) xregister.Handler {
	return &registerNameHandler{sender: sender}
}

type registerNameHandler struct {
	sender xcm.Sender
}

var _ xregister.Handler = (*registerNameHandler)(nil)

func (h *registerNameHandler) Weight() uint64 {
	return registerNameWeight
}

func (h *registerNameHandler) Deliver(ctx xregister.Context, db xregister.KVStore, origin xregister.Origin, call xregister.Call) (*xregister.DeliverResult, error) {
	account, err := xregister.EnsureSigned(origin)
	if err != nil {
		return nil, err
	}

	var msg XRegisterMsg
	if err := xregister.LoadMsg(call, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	conf, err := LoadConfiguration(db)
	if err != nil {
		return nil, err
	}

	index := conf.ServerIndex()
	env := envelope.Encode(index.Module(), index.Method(), account, msg.Name)
	dest := xcm.Sibling(xregister.ChainID(conf.ServerChainID))
	out := xcm.NewTransact(xcm.OriginKindNative, conf.MaxRemoteWeight, env)
	if err := h.sender.Send(dest, out); err != nil {
		return nil, errors.Wrapf(errors.ErrTransportSend, "to %s: %s", dest, err)
	}
	xregister.GetLogger(ctx).Debug("registration sent", "dest", dest, "account", account)

	return &xregister.DeliverResult{
		Data: env,
		Events: []xregister.Event{
			NameRegistrationRequested{Account: account, Name: msg.Name},
		},
	}, nil
}
