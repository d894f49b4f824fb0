package xregister

import (
	"encoding/json"

	"github.com/iov-one/xregister/errors"
)

// Handler is a core engine that can process a few specific calls.
// This could represent "request a remote name registration", or
// "record a name sent by a sibling chain".
type Handler interface {
	// Weight returns the upper bound of the execution cost of a single
	// Deliver call. Remote callers must allow at least this much.
	Weight() uint64

	Deliver(ctx Context, db KVStore, origin Origin, call Call) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like logging, or panic recovery, to many Handlers
type Decorator interface {
	Deliver(ctx Context, db KVStore, origin Origin, call Call, next Handler) (*DeliverResult, error)
}

// DeliverResult captures any non-error output of a handler.
type DeliverResult struct {
	// Data is a machine-parseable return value.
	Data []byte
	// Log is human-readable informational string.
	Log string
	// Events are emitted by the runtime once the changes made by the
	// handler are written. A failed call never emits its events.
	Events []Event
}

// Event is a notification published when a call succeeds.
type Event interface {
	// EventType returns the name of the event, ie. "xclient/NameRegistrationRequested".
	EventType() string
}

// EventSink receives events of successfully executed calls.
type EventSink interface {
	Emit(ctx Context, ev Event)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(index CallIndex, h Handler)
}

// Call is an encoded call. The first two bytes are the call index, the
// rest are the encoded arguments of the addressed method.
type Call []byte

// Index returns the call index the call is addressed to.
func (c Call) Index() (CallIndex, error) {
	if len(c) < len(CallIndex{}) {
		return CallIndex{}, errors.Wrapf(errors.ErrMalformedEnvelope, "call of %d bytes has no index", len(c))
	}
	return CallIndex{c[0], c[1]}, nil
}

// Msg is the decoded form of a call.
type Msg interface {
	Unmarshal([]byte) error
	Validate() error
}

// LoadMsg decodes the call into given message and validates it.
func LoadMsg(call Call, msg Msg) error {
	if err := msg.Unmarshal(call); err != nil {
		return errors.Wrap(err, "decode call")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "validate")
	}
	return nil
}

// Options are the genesis options.
// Each extension can look up it's key and parse the json as desired
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return json.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}
