package storage

import "errors"

var (
	// ErrMalformed indicates a stored value that could not be decoded
	ErrMalformed = errors.New("malformed stored value")

	// ErrClosed indicates use of a store after Close
	ErrClosed = errors.New("store is closed")
)
