package testutil

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// AdminPassword is the password LoginAdmin sets
const AdminPassword = "secret-pass"

// SetupTestApp builds an App on an in-memory store with the cheapest bcrypt
// cost. The App is closed when the test ends.
func SetupTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.Admin.BcryptCost = bcrypt.MinCost

	opts = append([]app.Option{app.WithStore(storage.NewMemoryStore())}, opts...)
	a, err := app.New(context.Background(), cfg, opts...)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// LoginAdmin replaces the default password, which also opens an admin session
func LoginAdmin(t *testing.T, a *app.App) {
	t.Helper()
	cfg := a.Config.Admin
	if err := a.Auth.ChangePassword(context.Background(), cfg.DefaultPassword, AdminPassword, AdminPassword); err != nil {
		t.Fatalf("Failed to log in as admin: %v", err)
	}
}

// CreateTestBoard creates a board with the given columns and returns the
// board and column ids. Requires an admin session.
func CreateTestBoard(t *testing.T, m *board.Manager, name string, columns ...string) (string, []string) {
	t.Helper()
	ctx := context.Background()

	b, err := m.AddBoard(ctx, name)
	if err != nil {
		t.Fatalf("Failed to create test board: %v", err)
	}
	ids := make([]string, 0, len(columns))
	for _, col := range columns {
		c, err := m.AddColumn(ctx, b.ID, col)
		if err != nil {
			t.Fatalf("Failed to create test column: %v", err)
		}
		ids = append(ids, c.ID)
	}
	return b.ID, ids
}

// CreateTestTask creates a task in the column and returns its id
func CreateTestTask(t *testing.T, m *board.Manager, columnID, title string) string {
	t.Helper()
	task, err := m.AddTask(context.Background(), columnID, title)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}
