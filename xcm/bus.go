package xcm

import (
	"sync"

	"github.com/iov-one/xregister"
	"github.com/iov-one/xregister/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// DefaultQueueCapacity is the number of messages a channel holds
	// before new submissions are refused.
	DefaultQueueCapacity = 1024

	// DefaultMaxMessageSize is the largest encoded message accepted.
	DefaultMaxMessageSize = 100 * 1024
)

// Inbound is a message waiting to be executed by its destination.
type Inbound struct {
	// From is the location of the sender, relative to the destination.
	From    Location
	Payload []byte
}

// Bus is an in-memory transport between parachains of one relay chain.
// It is safe for concurrent use.
type Bus struct {
	capacity int
	maxSize  int
	logger   log.Logger

	mu     sync.Mutex
	queues map[xregister.ChainID][]Inbound
}

// NewBus returns a bus with no connected chains. Non-positive capacity or
// maxSize select the defaults.
func NewBus(capacity, maxSize int) *Bus {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxMessageSize
	}
	return &Bus{
		capacity: capacity,
		maxSize:  maxSize,
		logger:   log.NewNopLogger(),
		queues:   make(map[xregister.ChainID][]Inbound),
	}
}

// WithLogger sets the logger used to report routing decisions.
func (b *Bus) WithLogger(logger log.Logger) *Bus {
	b.logger = logger.With("module", "xcm-bus")
	return b
}

// Connect makes a chain reachable. Connecting a chain twice is a noop.
func (b *Bus) Connect(id xregister.ChainID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.queues[id]; !ok {
		b.queues[id] = nil
	}
}

// Sender returns the transport used by given chain to reach its siblings.
func (b *Bus) Sender(from xregister.ChainID) Sender {
	return SenderFunc(func(dest Location, msg Message) error {
		return b.send(from, dest, msg)
	})
}

func (b *Bus) send(from xregister.ChainID, dest Location, msg Message) error {
	to, ok := dest.SiblingChain()
	if !ok {
		return errors.Wrapf(ErrUnroutable, "%s is not a sibling", dest)
	}
	if to == from {
		return errors.Wrap(ErrUnroutable, "cannot send to self")
	}
	raw, err := msg.Marshal()
	if err != nil {
		return errors.Wrap(err, "encode")
	}
	if len(raw) > b.maxSize {
		return errors.Wrapf(ErrMessageTooLarge, "%d bytes, limit %d", len(raw), b.maxSize)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	queue, ok := b.queues[to]
	if !ok {
		return errors.Wrapf(ErrUnroutable, "%s is not connected", to)
	}
	if len(queue) >= b.capacity {
		return errors.Wrapf(ErrQueueFull, "%s has %d pending messages", to, len(queue))
	}
	b.queues[to] = append(queue, Inbound{From: Sibling(from), Payload: raw})
	b.logger.Debug("message queued", "from", from, "to", to, "size", len(raw))
	return nil
}

// Drain removes and returns all messages waiting for given chain, in the
// order they were accepted.
func (b *Bus) Drain(id xregister.ChainID) []Inbound {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := b.queues[id]
	if _, ok := b.queues[id]; ok {
		b.queues[id] = nil
	}
	return msgs
}

// Pending returns the number of messages waiting for given chain.
func (b *Bus) Pending(id xregister.ChainID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queues[id])
}
