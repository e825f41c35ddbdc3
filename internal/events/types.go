// Package events fans board changes out to subscribers such as the TUI.
package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventStateChanged   EventType = "state_changed"
	EventSessionChanged EventType = "session_changed"
)

// Event represents a state change notification
type Event struct {
	Type       EventType
	BoardID    string    // Board touched by the change, "" when not board-specific
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
