package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// storeCases runs the same behaviour checks against every implementation
func storeCases(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, setupSQLiteStore(t)) })
	t.Run("memory", func(t *testing.T) { fn(t, NewMemoryStore()) })
}

// ============================================================================
// Store behaviour
// ============================================================================

func TestStore_GetMissingKey(t *testing.T) {
	storeCases(t, func(t *testing.T, s Store) {
		v, ok, err := s.Get(context.Background(), "nope")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})
}

func TestStore_SetManyThenGet(t *testing.T) {
	storeCases(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		require.NoError(t, s.SetMany(ctx, map[string][]byte{
			KeyBoards:         []byte(`[]`),
			KeyCurrentBoardID: []byte(`"b1"`),
		}))

		v, ok, err := s.Get(ctx, KeyCurrentBoardID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `"b1"`, string(v))

		// Overwrite
		require.NoError(t, s.SetMany(ctx, map[string][]byte{KeyCurrentBoardID: []byte(`""`)}))
		v, _, err = s.Get(ctx, KeyCurrentBoardID)
		require.NoError(t, err)
		assert.Equal(t, `""`, string(v))

		keys, err := s.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{KeyBoards, KeyCurrentBoardID}, keys)
	})
}

func TestStore_Delete(t *testing.T) {
	storeCases(t, func(t *testing.T, s Store) {
		ctx := context.Background()
		require.NoError(t, s.SetMany(ctx, map[string][]byte{"k": []byte(`1`)}))
		require.NoError(t, s.Delete(ctx, "k"))
		require.NoError(t, s.Delete(ctx, "k"), "deleting a missing key is not an error")

		_, ok, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "kanban.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.SetMany(ctx, map[string][]byte{KeyIsAdminSession: []byte(`true`)}))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	v, ok, err := s.Get(ctx, KeyIsAdminSession)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", string(v))
}

func TestSQLiteStore_MigrationsIdempotent(t *testing.T) {
	s := setupSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, runMigrations(ctx, s.db))

	var version int
	require.NoError(t, s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, len(migrations), version)
}

func TestMemoryStore_ClosedRejectsUse(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Close())

	_, _, err := s.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.SetMany(context.Background(), map[string][]byte{"k": nil}), ErrClosed)
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	buf := []byte(`"a"`)
	require.NoError(t, s.SetMany(ctx, map[string][]byte{"k": buf}))
	buf[1] = 'z'

	v, _, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(v))
}

// ============================================================================
// JSON helpers
// ============================================================================

func TestLoadJSON(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var names []string
	ok, err := LoadJSON(ctx, s, "names", &names)
	require.NoError(t, err)
	assert.False(t, ok)

	b := Batch{}
	require.NoError(t, b.Put("names", []string{"a", "b"}))
	require.NoError(t, s.SetMany(ctx, b))

	ok, err = LoadJSON(ctx, s, "names", &names)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestLoadJSON_Malformed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.SetMany(ctx, map[string][]byte{"names": []byte(`{not json`)}))

	var names []string
	ok, err := LoadJSON(ctx, s, "names", &names)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, ErrMalformed))
}
