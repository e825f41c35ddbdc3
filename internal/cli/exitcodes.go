package cli

import (
	"errors"

	"github.com/thenoetrevino/kanban/internal/auth"
	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Board, column or task not found, or an ambiguous reference.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Corrupted stored values that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, invalid status, password rules,
	// or any case where input fails validation rules.
	ExitValidation = 5

	// ExitPermission indicates the session may not perform the operation.
	// Use for: Mutations attempted without an admin session, wrong credentials.
	ExitPermission = 6

	// ExitCancelled indicates the user declined a confirmation.
	ExitCancelled = 7
)

// ExitError carries the exit code chosen for a failed command
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// errorClass describes how a sentinel is reported
type errorClass struct {
	target error
	code   string
	exit   int
	hint   string
}

var errorClasses = []errorClass{
	{board.ErrReadOnly, "READ_ONLY", ExitPermission, "Log in as admin first: kanban login"},
	{board.ErrCancelled, "CANCELLED", ExitCancelled, "Pass --yes to skip the confirmation"},
	{board.ErrBoardNotFound, "BOARD_NOT_FOUND", ExitNotFound, "List boards with: kanban board list"},
	{board.ErrColumnNotFound, "COLUMN_NOT_FOUND", ExitNotFound, "List columns with: kanban column list"},
	{board.ErrTaskNotFound, "TASK_NOT_FOUND", ExitNotFound, "List tasks with: kanban task list"},
	{ErrAmbiguousRef, "AMBIGUOUS_REFERENCE", ExitNotFound, "Use a longer id fragment or the full id"},
	{board.ErrEmptyName, "VALIDATION_ERROR", ExitValidation, ""},
	{board.ErrEmptyTitle, "VALIDATION_ERROR", ExitValidation, ""},
	{board.ErrBoardMismatch, "VALIDATION_ERROR", ExitValidation, "Columns can only be reordered within one board"},
	{models.ErrInvalidStatus, "INVALID_STATUS", ExitValidation, "Valid statuses: todo, in-progress, done"},
	{auth.ErrInvalidCredentials, "INVALID_CREDENTIALS", ExitPermission, ""},
	{auth.ErrWrongPassword, "WRONG_PASSWORD", ExitPermission, ""},
	{auth.ErrPasswordTooShort, "VALIDATION_ERROR", ExitValidation, ""},
	{auth.ErrPasswordMismatch, "VALIDATION_ERROR", ExitValidation, ""},
	{storage.ErrMalformed, "DATA_ERROR", ExitDataErr, ""},
}

func classify(err error) errorClass {
	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			return c
		}
	}
	return errorClass{code: "ERROR", exit: ExitError}
}

// HandleError reports err through the formatter and returns an *ExitError
// carrying the matching exit code. A nil err stays nil.
func (f *OutputFormatter) HandleError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	c := classify(err)
	_ = f.ErrorWithSuggestion(c.code, err.Error(), c.hint)
	return &ExitError{Code: c.exit, Err: err}
}

// UsageError reports a usage problem with exit code ExitUsage
func (f *OutputFormatter) UsageError(message, suggestion string) error {
	_ = f.ErrorWithSuggestion("USAGE_ERROR", message, suggestion)
	return &ExitError{Code: ExitUsage, Err: errors.New(message)}
}

// ExitCodeFor maps a command error to the process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return classify(err).exit
}
