package errors

import (
	"fmt"
	"io"
	"reflect"

	"github.com/pkg/errors"
)

// Root errors of the runtime. Codes below 100 are general purpose, codes
// from 100 describe failures of cross-chain calls.
var (
	// ErrNotFound is returned when the requested data does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrModel is returned when a model cannot be serialized or loaded.
	ErrModel = Register(5, "invalid model")

	// ErrEmpty is returned when a required value is empty.
	ErrEmpty = Register(9, "value is empty")

	// ErrState is returned when an operation is not allowed in the current
	// state, ie. a second genesis.
	ErrState = Register(10, "invalid state")

	// ErrType is returned when a value is not of the expected type.
	ErrType = Register(11, "invalid type")

	// ErrInput is returned for malformed configuration or arguments.
	ErrInput = Register(14, "invalid input")

	// ErrDatabase is returned when the backing store fails.
	ErrDatabase = Register(17, "database")

	// ErrUnauthorizedOrigin is returned when a call that must be signed by
	// a local account was requested by any other origin.
	ErrUnauthorizedOrigin = Register(100, "unauthorized origin")

	// ErrTransportSend is returned when the message transport refused to
	// accept a message for delivery.
	ErrTransportSend = Register(101, "transport send")

	// ErrOriginNotSiblingChain is returned when a transport-only call was
	// not executed on behalf of a sibling parachain.
	ErrOriginNotSiblingChain = Register(102, "origin not sibling chain")

	// ErrMalformedEnvelope is returned when an encoded call does not match
	// the layout expected for its call index, or no handler is registered
	// for the index.
	ErrMalformedEnvelope = Register(103, "malformed envelope")

	// ErrWeightLimit is returned when the weight a remote caller allowed is
	// lower than the weight of the addressed call.
	ErrWeightLimit = Register(104, "weight limit exceeded")

	// ErrPanic is returned when a handler panicked.
	ErrPanic = Register(111222, "panic")
)

// usedCodes maps every registered code to its error. Code 1 is reserved for
// errors that do not wrap a registered one.
var usedCodes = map[uint32]*Error{1: nil}

// Register declares a root error with a code unique in the program. It
// panics if the code is taken, so call it only when initializing package
// variables.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{code: code, desc: description}
	usedCodes[code] = err
	return err
}

// Error is a root error. Errors returned at runtime wrap a root error so
// that callers can tell the kind of a failure with Is.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Is returns true if err is this root error or wraps it. A nil root error
// matches only nil errors, including typed nils.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return err == nil || reflect.ValueOf(err).IsNil()
	}
	for err != nil {
		if err == kind {
			return true
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap adds a description to err. It returns nil if err is nil. A stack
// trace is attached by the innermost wrap.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{parent: err, msg: description}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Unwrap lets the standard errors package walk the chain.
func (e *wrappedError) Unwrap() error {
	return e.parent
}

// Format prints the message for %s and %v, and appends the stack trace of
// the innermost wrap for %+v.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s%+v", e.Error(), stackTrace(e))
		return
	}
	io.WriteString(s, e.Error())
}

// Recover turns a panic into an ErrPanic assigned to err. It must be
// deferred.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace returns the first stack trace found in the chain of err.
func stackTrace(err error) errors.StackTrace {
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}
