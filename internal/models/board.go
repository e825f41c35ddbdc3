package models

import "time"

// Board is the top-level container for one kanban workspace.
// It owns its columns and, through them, its tasks.
type Board struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetID returns the board id
func (b Board) GetID() string { return b.ID }
