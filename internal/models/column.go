package models

import "time"

// Column is an ordered lane within a board (e.g. "To Do").
// Order is a zero-based dense index among the board's columns.
type Column struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BoardID   string    `json:"boardId"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetID returns the column id
func (c Column) GetID() string { return c.ID }
