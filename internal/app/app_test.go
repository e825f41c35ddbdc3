package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/storage"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "kanban.db")
	cfg.Admin.BcryptCost = bcrypt.MinCost
	return cfg
}

func TestNew(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.NotNil(t, a.Board)
	assert.NotNil(t, a.Auth)
	assert.NotNil(t, a.Bus)
	assert.Empty(t, a.Board.Boards())
}

func TestNew_ViewerByDefault(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, testConfig(t), WithStore(storage.NewMemoryStore()))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	_, err = a.Board.AddBoard(ctx, "Work")
	assert.ErrorIs(t, err, board.ErrReadOnly)
}

func TestNew_SessionGatesBoard(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := New(ctx, cfg, WithConfirmer(board.AutoConfirm))
	require.NoError(t, err)

	require.NoError(t, a.Auth.ChangePassword(ctx, "admin", "hunter22", "hunter22"))
	b, err := a.Board.AddBoard(ctx, "Work")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	// State and session survive a restart
	reopened, err := New(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	current, ok := reopened.Board.CurrentBoard()
	require.True(t, ok)
	assert.Equal(t, b.ID, current.ID)
	assert.True(t, reopened.Auth.IsAdmin(ctx))

	require.NoError(t, reopened.Auth.Logout(ctx))
	_, err = reopened.Board.AddBoard(ctx, "Other")
	assert.ErrorIs(t, err, board.ErrReadOnly)
}

func TestClose(t *testing.T) {
	store := storage.NewMemoryStore()
	a, err := New(context.Background(), nil, WithStore(store))
	require.NoError(t, err)

	require.NoError(t, a.Close())
	_, _, err = store.Get(context.Background(), storage.KeyBoards)
	assert.ErrorIs(t, err, storage.ErrClosed)
}
