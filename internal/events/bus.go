package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultSubscriberBuffer is the send queue size of each subscriber
const DefaultSubscriberBuffer = 16

type subscriber struct {
	ch        chan Event
	closeOnce sync.Once
}

func (s *subscriber) close() {
	s.closeOnce.Do(func() { close(s.ch) })
}

// Bus is an in-process broadcaster.
// Publishing never blocks: a subscriber whose queue is full misses the event,
// which is fine because every event only means "re-read the state".
type Bus struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
	closed      bool

	sequence atomic.Int64
	sent     atomic.Int64
	dropped  atomic.Int64
}

// NewBus creates an empty Bus
func NewBus() *Bus {
	return &Bus{subscribers: make(map[*subscriber]struct{})}
}

// Subscribe registers a new listener with the given queue size.
// The returned cancel func unregisters it and closes the channel.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	s := &subscriber{ch: make(chan Event, buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		s.close()
		return s.ch, func() {}
	}
	b.subscribers[s] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subscribers, s)
		b.mu.Unlock()
		s.close()
	}
	return s.ch, cancel
}

// Publish stamps the event with a sequence id and sends it to every subscriber
func (b *Bus) Publish(event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}

	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for s := range b.subscribers {
		select {
		case s.ch <- event:
			b.sent.Add(1)
		default:
			b.dropped.Add(1)
			slog.Debug("subscriber queue full, event dropped", "event_type", event.Type, "sequence", event.SequenceID)
		}
	}
	return nil
}

// Close unregisters all subscribers and closes their channels
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for s := range b.subscribers {
		s.close()
	}
	b.subscribers = make(map[*subscriber]struct{})
}

// Stats is a point-in-time snapshot of bus counters
type Stats struct {
	Subscribers int   `json:"subscribers"`
	Published   int64 `json:"published"`
	Sent        int64 `json:"sent"`
	Dropped     int64 `json:"dropped"`
}

// Stats returns the current counters
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	n := len(b.subscribers)
	b.mu.RUnlock()
	return Stats{
		Subscribers: n,
		Published:   b.sequence.Load(),
		Sent:        b.sent.Load(),
		Dropped:     b.dropped.Load(),
	}
}
