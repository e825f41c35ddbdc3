package board

import "errors"

var (
	// ErrReadOnly is returned by every mutation when the session lacks edit rights.
	// State is left untouched.
	ErrReadOnly = errors.New("read-only session: editing requires admin rights")

	// ErrCancelled is returned when a confirmation-gated operation is declined
	ErrCancelled = errors.New("operation cancelled")

	// Validation errors
	ErrEmptyName  = errors.New("name cannot be empty")
	ErrEmptyTitle = errors.New("title cannot be empty")

	// Lookup errors
	ErrBoardNotFound  = errors.New("board not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")

	// ErrBoardMismatch indicates a column reorder across two different boards
	ErrBoardMismatch = errors.New("columns belong to different boards")
)
