package xclient

import "github.com/iov-one/xregister"

// NameRegistrationRequested is emitted when a registration request was
// handed to the transport.
type NameRegistrationRequested struct {
	Account xregister.AccountID
	Name    []byte
}

var _ xregister.Event = NameRegistrationRequested{}

func (NameRegistrationRequested) EventType() string {
	return "xclient/NameRegistrationRequested"
}
