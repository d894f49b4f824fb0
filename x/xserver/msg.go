package xserver

import (
	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/envelope"
)

// XRegisterMsg is the register call a sibling chain sends. Its encoding is
// the envelope.
type XRegisterMsg struct {
	Account xregister.AccountID
	Name    []byte
}

var _ xregister.Msg = (*XRegisterMsg)(nil)

// Unmarshal decodes the message from an envelope.
func (m *XRegisterMsg) Unmarshal(raw []byte) error {
	e, err := envelope.Decode(raw)
	if err != nil {
		return err
	}
	m.Account = e.Account
	m.Name = e.Name
	return nil
}

// Validate accepts any account and name. The account is only meaningful to
// the chain that sent it.
func (m *XRegisterMsg) Validate() error {
	return nil
}
