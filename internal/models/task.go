package models

import "time"

// Task represents a single unit of work on the board.
// Order is a zero-based dense index among the tasks of its column.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ColumnID    string    `json:"columnId"`
	BoardID     string    `json:"boardId"`
	Order       int       `json:"order"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GetID returns the task id
func (t Task) GetID() string { return t.ID }

// TaskPatch carries the fields of a partial task update.
// Nil fields are left untouched.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *Status
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// Apply returns a copy of t with the patch merged in.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}
