/*
Package envelope implements the binary layout of a remote call.

An envelope is SCALE encoded, the same way the receiving runtime decodes any
locally submitted call:

	module (1 byte) | method (1 byte) | account (32 bytes) | compact(len(name)) | name

The two leading bytes are the call index. They are the type discriminant the
receiving router uses to pick a handler, so they must always come from
configuration and never from data supplied by the caller.
*/
package envelope

import (
	"bytes"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
)

// Envelope is a decoded remote register-name call.
type Envelope struct {
	ModuleID uint8
	MethodID uint8
	Account  xregister.AccountID
	Name     []byte
}

// New returns an envelope addressed to given module and method.
func New(module, method uint8, account xregister.AccountID, name []byte) Envelope {
	return Envelope{
		ModuleID: module,
		MethodID: method,
		Account:  account,
		Name:     name,
	}
}

// Index returns the call index the envelope is addressed to.
func (e Envelope) Index() xregister.CallIndex {
	return xregister.NewCallIndex(e.ModuleID, e.MethodID)
}

// Equals compares all fields. A nil and an empty name are equal.
func (e Envelope) Equals(o Envelope) bool {
	return e.ModuleID == o.ModuleID &&
		e.MethodID == o.MethodID &&
		e.Account.Equals(o.Account) &&
		bytes.Equal(e.Name, o.Name)
}

// Marshal returns the binary representation of the envelope. It never fails.
func (e Envelope) Marshal() ([]byte, error) {
	return Encode(e.ModuleID, e.MethodID, e.Account, e.Name), nil
}

// Unmarshal loads the envelope from its binary representation.
func (e *Envelope) Unmarshal(raw []byte) error {
	dec, err := Decode(raw)
	if err != nil {
		return err
	}
	*e = dec
	return nil
}

// Encode produces the deterministic binary representation of a call.
func Encode(module, method uint8, account xregister.AccountID, name []byte) []byte {
	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)
	// Writing into a bytes.Buffer cannot fail.
	mustEncode(enc.PushByte(module))
	mustEncode(enc.PushByte(method))
	mustEncode(enc.Write(account[:]))
	return AppendName(buf.Bytes(), name)
}

// AppendName appends the compact length prefixed name to dst.
func AppendName(dst, name []byte) []byte {
	buf := bytes.NewBuffer(dst)
	enc := scale.NewEncoder(buf)
	mustEncode(enc.EncodeUintCompact(*big.NewInt(int64(len(name)))))
	mustEncode(enc.Write(name))
	return buf.Bytes()
}

func mustEncode(err error) {
	if err != nil {
		panic(err)
	}
}

// Decode is the exact inverse of Encode. It fails with ErrMalformedEnvelope
// if the input is truncated, declares more name bytes than it carries, or
// has trailing bytes.
func Decode(raw []byte) (Envelope, error) {
	var e Envelope
	if len(raw) < 2+xregister.AccountIDLength+1 {
		return e, errors.Wrapf(errors.ErrMalformedEnvelope, "%d bytes is too short", len(raw))
	}

	r := bytes.NewReader(raw)
	dec := scale.NewDecoder(r)

	module, err := dec.ReadOneByte()
	if err != nil {
		return e, errors.Wrapf(errors.ErrMalformedEnvelope, "module: %s", err)
	}
	method, err := dec.ReadOneByte()
	if err != nil {
		return e, errors.Wrapf(errors.ErrMalformedEnvelope, "method: %s", err)
	}
	var account xregister.AccountID
	if err := dec.Read(account[:]); err != nil {
		return e, errors.Wrapf(errors.ErrMalformedEnvelope, "account: %s", err)
	}
	n, err := dec.DecodeUintCompact()
	if err != nil {
		return e, errors.Wrapf(errors.ErrMalformedEnvelope, "name length: %s", err)
	}
	if !n.IsUint64() || n.Uint64() != uint64(r.Len()) {
		return e, errors.Wrapf(errors.ErrMalformedEnvelope, "name of %s bytes, %d available", n, r.Len())
	}
	name := make([]byte, r.Len())
	// Reading zero bytes from an exhausted reader reports EOF.
	if len(name) > 0 {
		if err := dec.Read(name); err != nil {
			return e, errors.Wrapf(errors.ErrMalformedEnvelope, "name: %s", err)
		}
	}
	return New(module, method, account, name), nil
}

// ReadIndex returns the call index of an encoded call without decoding
// the arguments.
func ReadIndex(raw []byte) (xregister.CallIndex, error) {
	return xregister.Call(raw).Index()
}
