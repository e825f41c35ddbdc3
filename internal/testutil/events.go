package testutil

import (
	"testing"
	"time"

	"github.com/thenoetrevino/kanban/internal/events"
)

// WaitForEvent waits for an event on the channel with timeout
func WaitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()

	select {
	case event, ok := <-ch:
		if !ok {
			t.Fatal("Event channel closed unexpectedly")
		}
		return event
	case <-time.After(timeout):
		t.Fatal("Timeout waiting for event")
		return events.Event{}
	}
}

// WaitForNoEvent verifies no event is received within timeout
func WaitForNoEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) {
	t.Helper()

	select {
	case event := <-ch:
		t.Fatalf("Unexpected event received: %+v", event)
	case <-time.After(timeout):
	}
}

// DrainEvents reads all pending events from channel without blocking
func DrainEvents(ch <-chan events.Event) []events.Event {
	var drained []events.Event
	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return drained
			}
			drained = append(drained, event)
		default:
			return drained
		}
	}
}
