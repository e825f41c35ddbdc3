package events

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func TestBus_FanOutToAllSubscribers(t *testing.T) {
	bus := NewBus()
	a, cancelA := bus.Subscribe(4)
	defer cancelA()
	b, cancelB := bus.Subscribe(4)
	defer cancelB()

	require.NoError(t, bus.Publish(Event{Type: EventStateChanged, BoardID: "b1"}))

	for _, ch := range []<-chan Event{a, b} {
		ev := receive(t, ch)
		assert.Equal(t, EventStateChanged, ev.Type)
		assert.Equal(t, "b1", ev.BoardID)
		assert.Equal(t, int64(1), ev.SequenceID)
		assert.False(t, ev.Timestamp.IsZero())
	}
}

func TestBus_SequenceIsMonotonic(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(10)
	defer cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, bus.Publish(Event{Type: EventStateChanged}))
	}
	var last int64
	for i := 0; i < 5; i++ {
		ev := receive(t, ch)
		assert.Greater(t, ev.SequenceID, last)
		last = ev.SequenceID
	}
}

func TestBus_FullSubscriberDropsInsteadOfBlocking(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe(1)
	defer cancel()

	require.NoError(t, bus.Publish(Event{Type: EventStateChanged}))
	require.NoError(t, bus.Publish(Event{Type: EventStateChanged}))

	stats := bus.Stats()
	assert.Equal(t, int64(2), stats.Published)
	assert.Equal(t, int64(1), stats.Sent)
	assert.Equal(t, int64(1), stats.Dropped)
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	cancel()
	cancel() // idempotent

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, bus.Stats().Subscribers)
}

func TestBus_Close(t *testing.T) {
	bus := NewBus()
	ch, _ := bus.Subscribe(1)
	bus.Close()
	bus.Close()

	_, ok := <-ch
	assert.False(t, ok)
	assert.ErrorIs(t, bus.Publish(Event{}), ErrBusClosed)

	late, _ := bus.Subscribe(1)
	_, ok = <-late
	assert.False(t, ok, "subscribing to a closed bus yields a closed channel")
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(100)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = bus.Publish(Event{Type: EventStateChanged})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, ch, 100)
}

// ============================================================================
// Publish helpers
// ============================================================================

type flakyPublisher struct {
	attempts  int
	failUntil int
}

func (f *flakyPublisher) Publish(Event) error {
	attempt := f.attempts
	f.attempts++
	if attempt < f.failUntil {
		return errors.New("simulated send failure")
	}
	return nil
}

func TestPublish_NilPublisher(t *testing.T) {
	assert.NotPanics(t, func() { Publish(nil, Event{Type: EventStateChanged}) })
}

func TestPublish_SwallowsErrors(t *testing.T) {
	p := &flakyPublisher{failUntil: 999}
	Publish(p, Event{Type: EventStateChanged})
	assert.Equal(t, 1, p.attempts)

	bus := NewBus()
	bus.Close()
	assert.NotPanics(t, func() { Publish(bus, Event{Type: EventSessionChanged}) })
}
