package board

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// toggle is a switchable Permissions
type toggle struct{ admin bool }

func (t *toggle) CanEdit(context.Context) bool { return t.admin }

// recordingConfirmer answers with a fixed value and remembers prompts
type recordingConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (r *recordingConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	r.prompts = append(r.prompts, prompt)
	return r.answer, r.err
}

// failingStore fails every write after being armed
type failingStore struct {
	*storage.MemoryStore
	fail bool
}

func (f *failingStore) SetMany(ctx context.Context, values map[string][]byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.MemoryStore.SetMany(ctx, values)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%02d", n)
	}
}

type managerFixture struct {
	mgr       *Manager
	store     *storage.MemoryStore
	perms     *toggle
	confirmer *recordingConfirmer
	bus       *events.Bus
}

func setupManager(t *testing.T) *managerFixture {
	t.Helper()
	f := &managerFixture{
		store:     storage.NewMemoryStore(),
		perms:     &toggle{admin: true},
		confirmer: &recordingConfirmer{answer: true},
		bus:       events.NewBus(),
	}
	f.mgr = NewManager(f.store, f.perms,
		WithConfirmer(f.confirmer),
		WithPublisher(f.bus),
		WithIDGenerator(sequentialIDs()),
		WithClock(func() time.Time { return epoch }),
	)
	require.NoError(t, f.mgr.Load(context.Background()))
	t.Cleanup(f.bus.Close)
	return f
}

// reload builds a fresh manager over the same store
func (f *managerFixture) reload(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(f.store, f.perms)
	require.NoError(t, m.Load(context.Background()))
	return m
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func taskID(t models.Task) string     { return t.ID }
func columnID(c models.Column) string { return c.ID }

// ============================================================================
// Lifecycle
// ============================================================================

func TestManager_LoadEmptyStore(t *testing.T) {
	f := setupManager(t)

	assert.Empty(t, f.mgr.Boards())
	_, ok := f.mgr.CurrentBoard()
	assert.False(t, ok)
}

func TestManager_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	f := setupManager(t)

	b, err := f.mgr.AddBoard(ctx, "Work")
	require.NoError(t, err)
	c, err := f.mgr.AddColumn(ctx, b.ID, "Todo")
	require.NoError(t, err)
	task, err := f.mgr.AddTask(ctx, c.ID, "Ship it")
	require.NoError(t, err)

	reloaded := f.reload(t)
	current, ok := reloaded.CurrentBoard()
	require.True(t, ok)
	assert.Equal(t, b, current)
	assert.Equal(t, []models.Column{c}, reloaded.Columns(b.ID))
	assert.Equal(t, []models.Task{task}, reloaded.Tasks(c.ID))

	keys, err := f.store.Keys(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		storage.KeyBoards, storage.KeyColumns, storage.KeyTasks, storage.KeyCurrentBoardID,
	}, keys)
}

func TestManager_MalformedStorageFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		storage.KeyBoards:         []byte(`[{"id":"b1","name":"Kept"}]`),
		storage.KeyColumns:        []byte(`{oops`),
		storage.KeyTasks:          []byte(`"not a list"`),
		storage.KeyCurrentBoardID: []byte(`42`),
	}))

	m := NewManager(store, AllowAll)
	require.NoError(t, m.Load(ctx))

	assert.Len(t, m.Boards(), 1)
	assert.Empty(t, m.Columns("b1"))
	current, ok := m.CurrentBoard()
	require.True(t, ok, "invalid pointer falls back to the first board")
	assert.Equal(t, "b1", current.ID)
}

func TestManager_PersistFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{MemoryStore: storage.NewMemoryStore()}
	m := NewManager(store, AllowAll)
	require.NoError(t, m.Load(ctx))

	_, err := m.AddBoard(ctx, "First")
	require.NoError(t, err)

	store.fail = true
	_, err = m.AddBoard(ctx, "Second")
	require.Error(t, err)
	assert.Len(t, m.Boards(), 1)
}

func TestManager_PublishesStateChanges(t *testing.T) {
	ctx := context.Background()
	f := setupManager(t)
	ch, cancel := f.bus.Subscribe(8)
	defer cancel()

	b, err := f.mgr.AddBoard(ctx, "Work")
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, events.EventStateChanged, ev.Type)
		assert.Equal(t, b.ID, ev.BoardID)
	case <-time.After(time.Second):
		t.Fatal("no event published")
	}

	// Failed mutations publish nothing
	_, err = f.mgr.AddColumn(ctx, "missing", "x")
	require.ErrorIs(t, err, ErrBoardNotFound)
	assert.Len(t, ch, 0)
}

// ============================================================================
// Permission gating
// ============================================================================

func TestManager_ViewerCannotMutate(t *testing.T) {
	ctx := context.Background()
	f := setupManager(t)
	b, err := f.mgr.AddBoard(ctx, "Work")
	require.NoError(t, err)
	c, err := f.mgr.AddColumn(ctx, b.ID, "Todo")
	require.NoError(t, err)
	task, err := f.mgr.AddTask(ctx, c.ID, "Task")
	require.NoError(t, err)
	before := f.mgr.Snapshot()

	f.perms.admin = false
	title := "renamed"

	_, err = f.mgr.AddBoard(ctx, "Nope")
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, f.mgr.DeleteBoard(ctx, b.ID), ErrReadOnly)
	_, err = f.mgr.AddColumn(ctx, b.ID, "Nope")
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, f.mgr.RenameColumn(ctx, c.ID, "Nope"), ErrReadOnly)
	assert.ErrorIs(t, f.mgr.DeleteColumn(ctx, c.ID), ErrReadOnly)
	assert.ErrorIs(t, f.mgr.MoveColumn(ctx, c.ID, c.ID), ErrReadOnly)
	_, err = f.mgr.AddTask(ctx, c.ID, "Nope")
	assert.ErrorIs(t, err, ErrReadOnly)
	_, err = f.mgr.UpdateTask(ctx, task.ID, models.TaskPatch{Title: &title})
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, f.mgr.DeleteTask(ctx, task.ID), ErrReadOnly)
	assert.ErrorIs(t, f.mgr.MoveTask(ctx, task.ID, c.ID, ""), ErrReadOnly)

	assert.Equal(t, before, f.mgr.Snapshot())
	assert.Empty(t, f.confirmer.prompts, "viewers are never asked to confirm")
}

func TestManager_ViewerCanSelectBoard(t *testing.T) {
	ctx := context.Background()
	f := setupManager(t)
	first, err := f.mgr.AddBoard(ctx, "One")
	require.NoError(t, err)
	_, err = f.mgr.AddBoard(ctx, "Two")
	require.NoError(t, err)

	f.perms.admin = false
	require.NoError(t, f.mgr.SelectBoard(ctx, first.ID))

	current, _ := f.reload(t).CurrentBoard()
	assert.Equal(t, first.ID, current.ID)
	assert.ErrorIs(t, f.mgr.SelectBoard(ctx, "missing"), ErrBoardNotFound)
}

func TestManager_NilPermissionsIsReadOnly(t *testing.T) {
	m := NewManager(storage.NewMemoryStore(), nil)
	require.NoError(t, m.Load(context.Background()))
	_, err := m.AddBoard(context.Background(), "x")
	assert.ErrorIs(t, err, ErrReadOnly)
}

// ============================================================================
// Confirmation
// ============================================================================

func TestManager_DeleteRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	f := setupManager(t)
	b, err := f.mgr.AddBoard(ctx, "Work")
	require.NoError(t, err)
	c, err := f.mgr.AddColumn(ctx, b.ID, "Todo")
	require.NoError(t, err)
	task, err := f.mgr.AddTask(ctx, c.ID, "Task")
	require.NoError(t, err)

	f.confirmer.answer = false
	assert.ErrorIs(t, f.mgr.DeleteTask(ctx, task.ID), ErrCancelled)
	assert.ErrorIs(t, f.mgr.DeleteColumn(ctx, c.ID), ErrCancelled)
	assert.ErrorIs(t, f.mgr.DeleteBoard(ctx, b.ID), ErrCancelled)
	assert.Len(t, f.mgr.Tasks(c.ID), 1)
	assert.Len(t, f.mgr.Boards(), 1)

	require.Len(t, f.confirmer.prompts, 3)
	assert.Contains(t, f.confirmer.prompts[0], "Task")
	assert.Contains(t, f.confirmer.prompts[1], "1 task(s)")
	assert.Contains(t, f.confirmer.prompts[2], "Work")

	f.confirmer.err = errors.New("prompt closed")
	f.confirmer.answer = true
	assert.ErrorIs(t, f.mgr.DeleteTask(ctx, task.ID), ErrCancelled)

	f.confirmer.err = nil
	require.NoError(t, f.mgr.DeleteBoard(ctx, b.ID))
	assert.Empty(t, f.mgr.Boards())
	assert.Empty(t, f.mgr.Snapshot().Tasks)
}

func TestManager_DefaultConfirmerDeclines(t *testing.T) {
	ctx := context.Background()
	m := NewManager(storage.NewMemoryStore(), AllowAll)
	require.NoError(t, m.Load(ctx))
	b, err := m.AddBoard(ctx, "Work")
	require.NoError(t, err)

	assert.ErrorIs(t, m.DeleteBoard(ctx, b.ID), ErrCancelled)
	assert.Len(t, m.Boards(), 1)
}

func TestManager_DeleteMissingSkipsPrompt(t *testing.T) {
	f := setupManager(t)
	assert.ErrorIs(t, f.mgr.DeleteTask(context.Background(), "nope"), ErrTaskNotFound)
	assert.Empty(t, f.confirmer.prompts)
}

// ============================================================================
// Operations end to end
// ============================================================================

func TestManager_TaskLifecycle(t *testing.T) {
	ctx := context.Background()
	f := setupManager(t)
	b, err := f.mgr.AddBoard(ctx, "Work")
	require.NoError(t, err)
	todo, err := f.mgr.AddColumn(ctx, b.ID, "Todo")
	require.NoError(t, err)
	doing, err := f.mgr.AddColumn(ctx, b.ID, "Doing")
	require.NoError(t, err)
	assert.Equal(t, 1, doing.Order)

	t1, err := f.mgr.AddTask(ctx, todo.ID, "T1")
	require.NoError(t, err)
	t2, err := f.mgr.AddTask(ctx, todo.ID, "T2")
	require.NoError(t, err)
	t3, err := f.mgr.AddTask(ctx, todo.ID, "T3")
	require.NoError(t, err)
	assert.Equal(t, b.ID, t1.BoardID)
	assert.Equal(t, models.StatusTodo, t1.Status)
	assert.Equal(t, epoch, t1.CreatedAt)

	// Drag T1 before T3
	require.NoError(t, f.mgr.MoveTask(ctx, t1.ID, todo.ID, t3.ID))
	assert.Equal(t, []string{t2.ID, t1.ID, t3.ID}, ids(f.mgr.Tasks(todo.ID), taskID))

	// Move T2 to Doing
	require.NoError(t, f.mgr.MoveTask(ctx, t2.ID, doing.ID, ""))
	assert.Equal(t, []string{t1.ID, t3.ID}, ids(f.mgr.Tasks(todo.ID), taskID))
	assert.Equal(t, []string{t2.ID}, ids(f.mgr.Tasks(doing.ID), taskID))

	done := models.StatusDone
	desc := "notes"
	updated, err := f.mgr.UpdateTask(ctx, t2.ID, models.TaskPatch{Status: &done, Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, models.StatusDone, updated.Status)

	got, err := f.reload(t).Task(t2.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	require.NoError(t, f.mgr.DeleteTask(ctx, t1.ID))
	remaining := f.mgr.Tasks(todo.ID)
	require.Len(t, remaining, 1)
	assert.Equal(t, 0, remaining[0].Order)
}

func TestManager_ColumnOperations(t *testing.T) {
	ctx := context.Background()
	f := setupManager(t)
	b, err := f.mgr.AddBoard(ctx, "Work")
	require.NoError(t, err)
	a, _ := f.mgr.AddColumn(ctx, b.ID, "A")
	bb, _ := f.mgr.AddColumn(ctx, b.ID, "B")
	c, _ := f.mgr.AddColumn(ctx, b.ID, "C")

	require.NoError(t, f.mgr.MoveColumn(ctx, c.ID, a.ID))
	assert.Equal(t, []string{c.ID, a.ID, bb.ID}, ids(f.mgr.Columns(b.ID), columnID))

	assert.ErrorIs(t, f.mgr.RenameColumn(ctx, a.ID, "  "), ErrEmptyName)
	require.NoError(t, f.mgr.RenameColumn(ctx, a.ID, "Alpha"))
	got, err := f.mgr.Column(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", got.Name)

	require.NoError(t, f.mgr.DeleteColumn(ctx, c.ID))
	cols := f.mgr.Columns(b.ID)
	assert.Equal(t, []string{a.ID, bb.ID}, ids(cols, columnID))
	for i, col := range cols {
		assert.Equal(t, i, col.Order)
	}
}

func TestManager_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	f := setupManager(t)
	_, err := f.mgr.AddBoard(ctx, "Work")
	require.NoError(t, err)

	boards := f.mgr.Boards()
	boards[0].Name = "mutated"
	assert.Equal(t, "Work", f.mgr.Boards()[0].Name)

	snap := f.mgr.Snapshot()
	snap.Boards[0].Name = "mutated"
	assert.Equal(t, "Work", f.mgr.Boards()[0].Name)
}
