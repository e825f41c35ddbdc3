package models

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh timestamp-derived identifier.
// UUIDv7 embeds the creation time in its high bits, so ids sort by creation
// and stay unique when several entities are created within the same millisecond.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does
		return uuid.NewString()
	}
	return id.String()
}

// Now returns the current time truncated to milliseconds, matching the
// precision entities are persisted with.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
