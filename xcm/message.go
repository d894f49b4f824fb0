package xcm

import (
	"bytes"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/iov-one/xregister/errors"
)

// Version0 is the only supported message format version.
const Version0 uint8 = 0

// TransactTag is the discriminant of the Transact instruction in a version
// zero message.
const TransactTag uint8 = 6

// OriginKind tells the destination how to translate the origin of a
// message into the origin of the call it executes.
type OriginKind uint8

const (
	// OriginKindNative executes the call as the native origin of the sender,
	// ie. a sibling parachain origin.
	OriginKindNative OriginKind = iota
	OriginKindSovereignAccount
	OriginKindSuperuser
	OriginKindXcm
)

// Instruction is the single action a message asks the destination to take.
type Instruction interface {
	Tag() uint8
	Validate() error
}

// Transact asks the destination to execute an encoded call, spending no
// more than RequireWeightAtMost.
type Transact struct {
	OriginKind          OriginKind
	RequireWeightAtMost uint64
	Call                []byte
}

var _ Instruction = (*Transact)(nil)

// Tag implements Instruction.
func (*Transact) Tag() uint8 {
	return TransactTag
}

// Validate implements Instruction.
func (t *Transact) Validate() error {
	if t.OriginKind > OriginKindXcm {
		return errors.Wrapf(ErrMalformedMessage, "unknown origin kind %d", t.OriginKind)
	}
	if len(t.Call) < 2 {
		return errors.Wrap(ErrMalformedMessage, "call without index")
	}
	return nil
}

// Message is a versioned cross-consensus message.
type Message struct {
	Version     uint8
	Instruction Instruction
}

// NewTransact returns a version zero message wrapping a Transact instruction.
func NewTransact(kind OriginKind, weight uint64, call []byte) Message {
	return Message{
		Version: Version0,
		Instruction: &Transact{
			OriginKind:          kind,
			RequireWeightAtMost: weight,
			Call:                call,
		},
	}
}

// Validate ensures the message can be encoded and executed.
func (m Message) Validate() error {
	if m.Version != Version0 {
		return errors.Wrapf(ErrMalformedMessage, "unsupported version %d", m.Version)
	}
	if m.Instruction == nil {
		return errors.Wrap(ErrMalformedMessage, "missing instruction")
	}
	return m.Instruction.Validate()
}

// Marshal returns the SCALE representation of the message.
func (m Message) Marshal() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	t, ok := m.Instruction.(*Transact)
	if !ok {
		return nil, errors.Wrapf(ErrMalformedMessage, "cannot encode %T", m.Instruction)
	}

	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)
	if err := enc.PushByte(m.Version); err != nil {
		return nil, errors.Wrap(err, "version")
	}
	if err := enc.PushByte(t.Tag()); err != nil {
		return nil, errors.Wrap(err, "tag")
	}
	if err := enc.PushByte(byte(t.OriginKind)); err != nil {
		return nil, errors.Wrap(err, "origin kind")
	}
	if err := enc.Encode(t.RequireWeightAtMost); err != nil {
		return nil, errors.Wrap(err, "weight")
	}
	if err := enc.EncodeUintCompact(*big.NewInt(int64(len(t.Call)))); err != nil {
		return nil, errors.Wrap(err, "call length")
	}
	if err := enc.Write(t.Call); err != nil {
		return nil, errors.Wrap(err, "call")
	}
	return buf.Bytes(), nil
}

// Unmarshal loads the message from its SCALE representation.
func (m *Message) Unmarshal(raw []byte) error {
	r := bytes.NewReader(raw)
	dec := scale.NewDecoder(r)

	version, err := dec.ReadOneByte()
	if err != nil {
		return errors.Wrapf(ErrMalformedMessage, "version: %s", err)
	}
	if version != Version0 {
		return errors.Wrapf(ErrMalformedMessage, "unsupported version %d", version)
	}
	tag, err := dec.ReadOneByte()
	if err != nil {
		return errors.Wrapf(ErrMalformedMessage, "tag: %s", err)
	}
	if tag != TransactTag {
		return errors.Wrapf(ErrMalformedMessage, "unsupported instruction %d", tag)
	}

	var t Transact
	kind, err := dec.ReadOneByte()
	if err != nil {
		return errors.Wrapf(ErrMalformedMessage, "origin kind: %s", err)
	}
	t.OriginKind = OriginKind(kind)
	if err := dec.Decode(&t.RequireWeightAtMost); err != nil {
		return errors.Wrapf(ErrMalformedMessage, "weight: %s", err)
	}
	n, err := dec.DecodeUintCompact()
	if err != nil {
		return errors.Wrapf(ErrMalformedMessage, "call length: %s", err)
	}
	if !n.IsUint64() || n.Uint64() != uint64(r.Len()) {
		return errors.Wrapf(ErrMalformedMessage, "call of %s bytes, %d available", n, r.Len())
	}
	t.Call = make([]byte, r.Len())
	if len(t.Call) > 0 {
		if err := dec.Read(t.Call); err != nil {
			return errors.Wrapf(ErrMalformedMessage, "call: %s", err)
		}
	}

	msg := Message{Version: version, Instruction: &t}
	if err := msg.Validate(); err != nil {
		return err
	}
	*m = msg
	return nil
}
