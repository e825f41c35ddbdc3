package events

import "errors"

// ErrBusClosed is returned when publishing to a closed Bus
var ErrBusClosed = errors.New("event bus closed")
