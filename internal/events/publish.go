package events

import (
	"errors"
	"log/slog"
)

// Publish sends event through p. Failures are logged, never returned: state
// is already persisted when an event goes out. A nil publisher is skipped.
func Publish(p Publisher, event Event) {
	if p == nil {
		return
	}
	err := p.Publish(event)
	switch {
	case err == nil:
	case errors.Is(err, ErrBusClosed):
		// shutting down, nobody is listening
		slog.Debug("event dropped after bus close", "event_type", event.Type)
	default:
		slog.Warn("failed to publish event", "event_type", event.Type, "board_id", event.BoardID, "error", err)
	}
}
