package models

import (
	"fmt"
	"strings"
)

// Status is the workflow state of a task.
// Any status may transition to any other by explicit edit; nothing changes it implicitly.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// AllStatuses lists the statuses in display order.
var AllStatuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Next returns the following status, wrapping from done back to todo.
func (s Status) Next() Status {
	for i, st := range AllStatuses {
		if st == s {
			return AllStatuses[(i+1)%len(AllStatuses)]
		}
	}
	return StatusTodo
}

// Label returns the human readable name
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// ParseStatus converts user input into a Status.
// Accepts the canonical values plus a few spellings ("in_progress", "inprogress", "doing").
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "todo", "to-do", "to do":
		return StatusTodo, nil
	case "in-progress", "in_progress", "inprogress", "in progress", "doing":
		return StatusInProgress, nil
	case "done", "complete", "completed":
		return StatusDone, nil
	}
	return "", fmt.Errorf("%w: %q (expected todo, in-progress or done)", ErrInvalidStatus, s)
}
