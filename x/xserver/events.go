package xserver

import "github.com/iov-one/xregister"

// NameRegistered is emitted when a name was recorded for an account.
type NameRegistered struct {
	Source  xregister.ChainID
	Account xregister.AccountID
	Name    []byte
}

var _ xregister.Event = NameRegistered{}

func (NameRegistered) EventType() string {
	return "xserver/NameRegistered"
}
