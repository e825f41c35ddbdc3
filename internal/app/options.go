package app

import (
	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store     storage.Store
	confirmer board.Confirmer
}

// WithStore uses store instead of opening the configured database.
// The App takes ownership and closes it.
func WithStore(store storage.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = store
	}
}

// WithConfirmer sets the collaborator asked before deletions
func WithConfirmer(c board.Confirmer) Option {
	return func(cfg *appConfig) {
		cfg.confirmer = c
	}
}
