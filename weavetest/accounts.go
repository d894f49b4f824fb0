package weavetest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/iov-one/xregister"
)

var accountSeq uint64

// NewAccount returns a new, unique account. Accounts are never zero, so
// they are always valid signers.
func NewAccount() xregister.AccountID {
	n := atomic.AddUint64(&accountSeq, 1)
	var a xregister.AccountID
	copy(a[:], "test-account")
	binary.BigEndian.PutUint64(a[xregister.AccountIDLength-8:], n)
	return a
}
