package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/auth"
	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	Config *config.Config

	// Durable key/value store shared by the board and the session gate
	store storage.Store

	// Event bus for live updates
	Bus *events.Bus

	Auth  *auth.Service
	Board *board.Manager
}

// New opens the store, wires the services and loads the board state.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	options := appConfig{confirmer: board.DenyAll}
	for _, opt := range opts {
		opt(&options)
	}

	store := options.store
	if store == nil {
		path := cfg.DatabasePath
		if path == "" {
			defaultPath, err := storage.DefaultPath()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve database path: %w", err)
			}
			path = defaultPath
		}
		opened, err := storage.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		store = opened
	}

	bus := events.NewBus()
	authService := auth.NewService(store, auth.Config{
		Username:        cfg.Admin.Username,
		DefaultPassword: cfg.Admin.DefaultPassword,
		BcryptCost:      cfg.Admin.BcryptCost,
	}, bus)
	manager := board.NewManager(store, authService,
		board.WithConfirmer(options.confirmer),
		board.WithPublisher(bus),
	)

	a := &App{
		Config: cfg,
		store:  store,
		Bus:    bus,
		Auth:   authService,
		Board:  manager,
	}
	if err := manager.Load(ctx); err != nil {
		return nil, errors.Join(err, a.Close())
	}
	return a, nil
}

// Close stops the event bus and closes the store
func (a *App) Close() error {
	a.Bus.Close()
	return a.store.Close()
}
