/*
Package xcm defines the cross-consensus messages exchanged between chains
and the transport used to submit them.

A chain hands a Message addressed to a Location to a Sender. The Sender only
reports whether the message was accepted for delivery. Delivery itself is
asynchronous and best effort: the sender never learns whether the
destination executed the message, and no acknowledgment flows back.

Bus is an in-memory transport connecting chains of a single relay chain. It
is used by tests and by the xregisterd demo daemon.
*/
package xcm

import (
	"github.com/iov-one/xregister/errors"
)

var (
	// ErrMalformedMessage is returned when a message cannot be encoded or
	// decoded.
	ErrMalformedMessage = errors.Register(200, "malformed message")

	// ErrUnroutable is returned when the transport does not know how to
	// reach the destination.
	ErrUnroutable = errors.Register(201, "unroutable destination")

	// ErrQueueFull is returned when the channel to the destination cannot
	// take more messages.
	ErrQueueFull = errors.Register(202, "queue full")

	// ErrMessageTooLarge is returned when the encoded message exceeds the
	// channel's maximum message size.
	ErrMessageTooLarge = errors.Register(203, "message too large")
)
