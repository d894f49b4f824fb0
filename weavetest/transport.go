package weavetest

import (
	"sync"

	"github.com/iov-one/xregister/xcm"
)

// Submission is a single message handed to the Transport.
type Submission struct {
	Dest xcm.Location
	Msg  xcm.Message
}

// Transport is a mock implementation of the xcm.Sender interface. It
// records every accepted message.
//
// Set Err to make all submissions fail. Failed submissions are counted but
// not recorded.
type Transport struct {
	// Err if set is returned by the Send method.
	Err error

	mu    sync.Mutex
	calls int
	sent  []Submission
}

var _ xcm.Sender = (*Transport)(nil)

func (t *Transport) Send(dest xcm.Location, msg xcm.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls++
	if t.Err != nil {
		return t.Err
	}
	t.sent = append(t.sent, Submission{Dest: dest, Msg: msg})
	return nil
}

// Sent returns all accepted submissions, in order.
func (t *Transport) Sent() []Submission {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Submission(nil), t.sent...)
}

// CallCount returns the number of Send calls, including failed ones.
func (t *Transport) CallCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}
