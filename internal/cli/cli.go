package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	owned  bool
}

type appContextKey struct{}

type ephemeralContextKey struct{}

// WithApp stores an already built App in ctx. Commands run against it
// instead of opening the configured database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey{}, a)
}

// WithEphemeral makes NewCLI keep everything in memory for this run
func WithEphemeral(ctx context.Context) context.Context {
	return context.WithValue(ctx, ephemeralContextKey{}, true)
}

// NewCLI loads the configuration and opens the application
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	opts := []app.Option{app.WithConfirmer(Confirmer(cfg.ColorScheme))}
	if ephemeral, _ := ctx.Value(ephemeralContextKey{}).(bool); ephemeral {
		opts = append(opts, app.WithStore(storage.NewMemoryStore()))
	}

	application, err := app.New(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return &CLI{App: application, Config: cfg, owned: true}, nil
}

// GetCLIFromContext returns the App injected with WithApp, or opens a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appContextKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: a.Config}, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources. An injected App is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
