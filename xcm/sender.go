package xcm

// Sender submits messages for delivery to other chains. A nil error means
// the message was accepted for delivery, not that it was delivered.
type Sender interface {
	Send(dest Location, msg Message) error
}

// SenderFunc allows to use a function as a Sender.
type SenderFunc func(dest Location, msg Message) error

// Send implements Sender.
func (fn SenderFunc) Send(dest Location, msg Message) error {
	return fn(dest, msg)
}
