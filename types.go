package xregister

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/xregister/errors"
)

// AccountIDLength is the length of all account identifiers. Accounts are
// opaque to the server chain, it only needs them to be of a fixed size.
const AccountIDLength = 32

// AccountID identifies an account on the chain that signed the call.
type AccountID [AccountIDLength]byte

// ParseAccountID decodes a hex representation of an account, optionally
// prefixed with 0x.
func ParseAccountID(s string) (AccountID, error) {
	var a AccountID
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return a, errors.Wrap(errors.ErrInput, "cannot decode hex")
	}
	if len(raw) != AccountIDLength {
		return a, errors.Wrapf(errors.ErrInput, "account must be %d bytes, got %d", AccountIDLength, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// NewAccountID copies given bytes into an account identifier.
func NewAccountID(raw []byte) (AccountID, error) {
	var a AccountID
	if len(raw) != AccountIDLength {
		return a, errors.Wrapf(errors.ErrInput, "account must be %d bytes, got %d", AccountIDLength, len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

// Bytes returns the byte representation of the account. Use this method
// when you need to use an account as a database key.
func (a AccountID) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// Equals checks if two accounts are the same
func (a AccountID) Equals(b AccountID) bool {
	return bytes.Equal(a[:], b[:])
}

// IsZero returns true if all bytes of the account are zero.
func (a AccountID) IsZero() bool {
	return a == AccountID{}
}

// Validate returns an error if the account cannot be used as a signer.
func (a AccountID) Validate() error {
	if a.IsZero() {
		return errors.Wrap(errors.ErrEmpty, "account")
	}
	return nil
}

func (a AccountID) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard array of numbers encoding
func (a AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccountID) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	acc, err := ParseAccountID(enc)
	if err != nil {
		return err
	}
	*a = acc
	return nil
}

// ChainID is a parachain identifier.
type ChainID uint32

func (c ChainID) String() string {
	return fmt.Sprintf("para:%d", uint32(c))
}

// CallIndex is the pair of discriminant bytes that addresses a call:
// the module index followed by the method index within that module.
type CallIndex [2]byte

// NewCallIndex returns the index of the given method of the given module.
func NewCallIndex(module, method uint8) CallIndex {
	return CallIndex{module, method}
}

// Module returns the module discriminant.
func (c CallIndex) Module() uint8 {
	return c[0]
}

// Method returns the method discriminant.
func (c CallIndex) Method() uint8 {
	return c[1]
}

func (c CallIndex) String() string {
	return fmt.Sprintf("%d/%d", c[0], c[1])
}
