package app

import (
	"sync"

	"github.com/iov-one/xregister"
)

// EventLog is an event sink that keeps all events in memory, in the order
// they were emitted. Each event is also written to the context logger.
type EventLog struct {
	mu     sync.Mutex
	events []xregister.Event
}

var _ xregister.EventSink = (*EventLog)(nil)

// NewEventLog returns an empty event log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Emit implements xregister.EventSink.
func (l *EventLog) Emit(ctx xregister.Context, ev xregister.Event) {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()

	xregister.GetLogger(ctx).Info("event emitted", "type", ev.EventType())
}

// Events returns a copy of all events emitted so far.
func (l *EventLog) Events() []xregister.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]xregister.Event(nil), l.events...)
}

// Len returns the number of emitted events.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}
