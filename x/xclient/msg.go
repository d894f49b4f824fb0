package xclient

import (
	"bytes"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/envelope"
	"github.com/iov-one/xregister/errors"
)

// XRegisterMsg asks to register a name for the signer of the call on the
// server chain. The name is opaque and of any length.
type XRegisterMsg struct {
	Name []byte
}

var _ xregister.Msg = (*XRegisterMsg)(nil)

// NewXRegisterCall returns the encoded call of the register method
// routed at given index.
func NewXRegisterCall(index xregister.CallIndex, name []byte) xregister.Call {
	return envelope.AppendName([]byte{index[0], index[1]}, name)
}

// Unmarshal decodes the message from an encoded call, including the call
// index.
func (m *XRegisterMsg) Unmarshal(raw []byte) error {
	if len(raw) < 3 {
		return errors.Wrapf(errors.ErrMalformedEnvelope, "call of %d bytes is too short", len(raw))
	}
	r := bytes.NewReader(raw[2:])
	dec := scale.NewDecoder(r)
	n, err := dec.DecodeUintCompact()
	if err != nil {
		return errors.Wrapf(errors.ErrMalformedEnvelope, "name length: %s", err)
	}
	if !n.IsUint64() || n.Uint64() != uint64(r.Len()) {
		return errors.Wrapf(errors.ErrMalformedEnvelope, "name of %s bytes, %d available", n, r.Len())
	}
	name := make([]byte, r.Len())
	if len(name) > 0 {
		if err := dec.Read(name); err != nil {
			return errors.Wrapf(errors.ErrMalformedEnvelope, "name: %s", err)
		}
	}
	m.Name = name
	return nil
}

// Validate accepts any name.
func (m *XRegisterMsg) Validate() error {
	return nil
}
