package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// Permissions decides whether the acting session may mutate the board.
// It is a capability check, not a security boundary.
type Permissions interface {
	CanEdit(ctx context.Context) bool
}

// PermissionFunc adapts a function to Permissions
type PermissionFunc func(ctx context.Context) bool

func (f PermissionFunc) CanEdit(ctx context.Context) bool { return f(ctx) }

// AllowAll grants edit rights unconditionally
var AllowAll Permissions = PermissionFunc(func(context.Context) bool { return true })

// Confirmer asks the user to approve a destructive operation.
// Returning false (or an error) cancels the operation.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) { return f(ctx, prompt) }

var (
	// AutoConfirm approves everything (--yes)
	AutoConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })

	// DenyAll declines everything; used when no interactive collaborator exists
	DenyAll Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })
)

// Option configures a Manager
type Option func(*Manager)

// WithConfirmer sets the collaborator asked before deletions
func WithConfirmer(c Confirmer) Option {
	return func(m *Manager) { m.confirmer = c }
}

// WithPublisher sets where change notifications go
func WithPublisher(p events.Publisher) Option {
	return func(m *Manager) { m.publisher = p }
}

// WithClock overrides the time source for created entities
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator overrides the id source for created entities
func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) { m.newID = newID }
}

// Manager owns the board state. Every successful mutation is persisted to the
// store and announced to subscribers before the call returns.
type Manager struct {
	mu    sync.RWMutex
	state State

	store     storage.Store
	perms     Permissions
	confirmer Confirmer
	publisher events.Publisher
	now       func() time.Time
	newID     func() string
}

// NewManager creates a Manager over store. A nil perms denies all edits.
// Call Load before use.
func NewManager(store storage.Store, perms Permissions, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		perms:     perms,
		confirmer: DenyAll,
		now:       models.Now,
		newID:     models.NewID,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load reads the state from the store.
// Unreadable or malformed keys fall back to empty defaults with a warning.
func (m *Manager) Load(ctx context.Context) error {
	var s State
	loadKey(ctx, m.store, storage.KeyBoards, &s.Boards)
	loadKey(ctx, m.store, storage.KeyColumns, &s.Columns)
	loadKey(ctx, m.store, storage.KeyTasks, &s.Tasks)
	loadKey(ctx, m.store, storage.KeyCurrentBoardID, &s.CurrentBoardID)

	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.state = Normalize(s)
	m.mu.Unlock()

	slog.Debug("board state loaded",
		"boards", len(s.Boards),
		"columns", len(s.Columns),
		"tasks", len(s.Tasks))
	return nil
}

func loadKey[T any](ctx context.Context, store storage.Store, key string, dst *T) {
	var v T
	if _, err := storage.LoadJSON(ctx, store, key, &v); err != nil {
		slog.Warn("ignoring unreadable stored value", "key", key, "error", err)
		return
	}
	*dst = v
}

// ============================================================================
// Read operations
// ============================================================================

// Snapshot returns a copy of the whole state
func (m *Manager) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// Boards lists boards in creation order
func (m *Manager) Boards() []models.Board {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Board(nil), m.state.Boards...)
}

// Board returns the board with the given id
func (m *Manager) Board(id string) (models.Board, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.state.boardIndex(id); i >= 0 {
		return m.state.Boards[i], nil
	}
	return models.Board{}, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
}

// CurrentBoard returns the selected board; ok is false when there are no boards
func (m *Manager) CurrentBoard() (models.Board, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.state.boardIndex(m.state.CurrentBoardID); i >= 0 {
		return m.state.Boards[i], true
	}
	return models.Board{}, false
}

// Columns lists the board's columns left to right
func (m *Manager) Columns(boardID string) []models.Column {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return columnsOf(m.state, boardID)
}

// Column returns the column with the given id
func (m *Manager) Column(id string) (models.Column, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.state.columnIndex(id); i >= 0 {
		return m.state.Columns[i], nil
	}
	return models.Column{}, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
}

// Tasks lists the column's tasks top to bottom
func (m *Manager) Tasks(columnID string) []models.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return tasksOf(m.state, columnID)
}

// Task returns the task with the given id
func (m *Manager) Task(id string) (models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.state.taskIndex(id); i >= 0 {
		return m.state.Tasks[i], nil
	}
	return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// CanEdit reports whether mutations are currently allowed
func (m *Manager) CanEdit(ctx context.Context) bool {
	return m.perms != nil && m.perms.CanEdit(ctx)
}

// SelectBoard changes the current board. Allowed for viewers.
func (m *Manager) SelectBoard(ctx context.Context, id string) error {
	return m.apply(ctx, id, func(s State) (State, error) {
		return SelectBoard(s, id)
	})
}

// ============================================================================
// Mutations
// ============================================================================

// AddBoard creates a board and makes it current
func (m *Manager) AddBoard(ctx context.Context, name string) (models.Board, error) {
	b := models.Board{ID: m.newID(), Name: name, CreatedAt: m.now()}
	err := m.mutate(ctx, b.ID, func(s State) (State, error) {
		next, err := AddBoard(s, b)
		b.Name = strings.TrimSpace(b.Name)
		return next, err
	})
	if err != nil {
		return models.Board{}, err
	}
	slog.Debug("board created", "board_id", b.ID, "name", b.Name)
	return b, nil
}

// DeleteBoard removes a board with its columns and tasks after confirmation
func (m *Manager) DeleteBoard(ctx context.Context, id string) error {
	if !m.CanEdit(ctx) {
		return ErrReadOnly
	}
	b, err := m.Board(id)
	if err != nil {
		return err
	}
	prompt := fmt.Sprintf("Delete board %q with all its columns and tasks?", b.Name)
	if err := m.confirm(ctx, prompt); err != nil {
		return err
	}
	if err := m.mutate(ctx, id, func(s State) (State, error) { return DeleteBoard(s, id) }); err != nil {
		return err
	}
	slog.Debug("board deleted", "board_id", id)
	return nil
}

// AddColumn appends a column to the board
func (m *Manager) AddColumn(ctx context.Context, boardID, name string) (models.Column, error) {
	c := models.Column{ID: m.newID(), Name: name, BoardID: boardID, CreatedAt: m.now()}
	err := m.mutate(ctx, boardID, func(s State) (State, error) {
		next, created, err := AddColumn(s, c)
		c = created
		return next, err
	})
	if err != nil {
		return models.Column{}, err
	}
	slog.Debug("column created", "column_id", c.ID, "board_id", boardID, "order", c.Order)
	return c, nil
}

// RenameColumn renames a column; a blank name is rejected with ErrEmptyName
func (m *Manager) RenameColumn(ctx context.Context, id, name string) error {
	boardID := m.columnBoard(id)
	return m.mutate(ctx, boardID, func(s State) (State, error) { return RenameColumn(s, id, name) })
}

// DeleteColumn removes a column and its tasks after confirmation
func (m *Manager) DeleteColumn(ctx context.Context, id string) error {
	if !m.CanEdit(ctx) {
		return ErrReadOnly
	}
	c, err := m.Column(id)
	if err != nil {
		return err
	}
	prompt := fmt.Sprintf("Delete column %q and its %d task(s)?", c.Name, len(m.Tasks(id)))
	if err := m.confirm(ctx, prompt); err != nil {
		return err
	}
	if err := m.mutate(ctx, c.BoardID, func(s State) (State, error) { return DeleteColumn(s, id) }); err != nil {
		return err
	}
	slog.Debug("column deleted", "column_id", id, "board_id", c.BoardID)
	return nil
}

// MoveColumn moves source to target's position within the same board
func (m *Manager) MoveColumn(ctx context.Context, sourceID, targetID string) error {
	boardID := m.columnBoard(sourceID)
	return m.mutate(ctx, boardID, func(s State) (State, error) { return MoveColumn(s, sourceID, targetID) })
}

// AddTask appends a todo task with an empty description to the column
func (m *Manager) AddTask(ctx context.Context, columnID, title string) (models.Task, error) {
	t := models.Task{ID: m.newID(), Title: title, ColumnID: columnID, CreatedAt: m.now()}
	boardID := m.columnBoard(columnID)
	err := m.mutate(ctx, boardID, func(s State) (State, error) {
		next, created, err := AddTask(s, t)
		t = created
		return next, err
	})
	if err != nil {
		return models.Task{}, err
	}
	slog.Debug("task created", "task_id", t.ID, "column_id", columnID, "order", t.Order)
	return t, nil
}

// UpdateTask merges the non-nil patch fields into the task
func (m *Manager) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	var updated models.Task
	boardID := m.taskBoard(id)
	err := m.mutate(ctx, boardID, func(s State) (State, error) {
		next, t, err := UpdateTask(s, id, patch)
		updated = t
		return next, err
	})
	if err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

// DeleteTask removes a task after confirmation
func (m *Manager) DeleteTask(ctx context.Context, id string) error {
	if !m.CanEdit(ctx) {
		return ErrReadOnly
	}
	t, err := m.Task(id)
	if err != nil {
		return err
	}
	if err := m.confirm(ctx, fmt.Sprintf("Delete task %q?", t.Title)); err != nil {
		return err
	}
	return m.mutate(ctx, t.BoardID, func(s State) (State, error) { return DeleteTask(s, id) })
}

// MoveTask moves a task before beforeTaskID in targetColumnID.
// beforeTaskID may be empty to drop at the end. See MoveTask for the rules.
func (m *Manager) MoveTask(ctx context.Context, taskID, targetColumnID, beforeTaskID string) error {
	boardID := m.columnBoard(targetColumnID)
	err := m.mutate(ctx, boardID, func(s State) (State, error) {
		return MoveTask(s, taskID, targetColumnID, beforeTaskID)
	})
	if err != nil {
		return err
	}
	slog.Debug("task moved", "task_id", taskID, "column_id", targetColumnID, "before", beforeTaskID)
	return nil
}

// ============================================================================
// Internals
// ============================================================================

func (m *Manager) columnBoard(columnID string) string {
	c, err := m.Column(columnID)
	if err != nil {
		return ""
	}
	return c.BoardID
}

func (m *Manager) taskBoard(taskID string) string {
	t, err := m.Task(taskID)
	if err != nil {
		return ""
	}
	return t.BoardID
}

// confirm asks the confirmer; declining or failing yields ErrCancelled
func (m *Manager) confirm(ctx context.Context, prompt string) error {
	if m.confirmer == nil {
		return ErrCancelled
	}
	ok, err := m.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}

// mutate applies fn after checking edit rights
func (m *Manager) mutate(ctx context.Context, boardID string, fn func(State) (State, error)) error {
	if !m.CanEdit(ctx) {
		slog.Debug("mutation ignored for read-only session", "board_id", boardID)
		return ErrReadOnly
	}
	return m.apply(ctx, boardID, fn)
}

// apply runs fn against the current state, persists the result and only then
// swaps it in. On any error the in-memory state is left as it was.
func (m *Manager) apply(ctx context.Context, boardID string, fn func(State) (State, error)) error {
	m.mu.Lock()
	next, err := fn(m.state)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if err := m.persist(ctx, next); err != nil {
		m.mu.Unlock()
		return err
	}
	m.state = next
	m.mu.Unlock()

	events.Publish(m.publisher, events.Event{
		Type:      events.EventStateChanged,
		BoardID:   boardID,
		Timestamp: time.Now(),
	})
	return nil
}

func (m *Manager) persist(ctx context.Context, s State) error {
	batch := storage.Batch{}
	err := errors.Join(
		batch.Put(storage.KeyBoards, nonNil(s.Boards)),
		batch.Put(storage.KeyColumns, nonNil(s.Columns)),
		batch.Put(storage.KeyTasks, nonNil(s.Tasks)),
		batch.Put(storage.KeyCurrentBoardID, s.CurrentBoardID),
	)
	if err != nil {
		return err
	}
	if err := m.store.SetMany(ctx, batch); err != nil {
		return fmt.Errorf("failed to save board state: %w", err)
	}
	return nil
}

// nonNil keeps empty collections encoded as [] rather than null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
