package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ErrAmbiguousRef is returned when a reference matches more than one entity
var ErrAmbiguousRef = errors.New("reference is ambiguous")

// minPartialLength is the shortest partial id accepted as a reference
const minPartialLength = 4

// resolve finds the single item referenced by ref: an exact id, then an exact
// case-insensitive name among named, then a unique id prefix or suffix.
// Ids are time-ordered, so ids created together share a prefix and the
// short form shown to users is the suffix.
func resolve[T any](items, named []T, ref string, id, name func(T) string) (T, bool, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, false, nil
	}

	for _, it := range items {
		if id(it) == ref {
			return it, true, nil
		}
	}

	var byName []T
	for _, it := range named {
		if strings.EqualFold(name(it), ref) {
			byName = append(byName, it)
		}
	}
	switch len(byName) {
	case 1:
		return byName[0], true, nil
	case 0:
	default:
		return zero, false, fmt.Errorf("%w: %d items named %q", ErrAmbiguousRef, len(byName), ref)
	}

	if len(ref) < minPartialLength {
		return zero, false, nil
	}
	var partial []T
	for _, it := range items {
		if strings.HasPrefix(id(it), ref) || strings.HasSuffix(id(it), ref) {
			partial = append(partial, it)
		}
	}
	switch len(partial) {
	case 0:
		return zero, false, nil
	case 1:
		return partial[0], true, nil
	default:
		return zero, false, fmt.Errorf("%w: %d ids match %q", ErrAmbiguousRef, len(partial), ref)
	}
}

// ResolveBoard finds a board by id, name or id fragment.
// An empty ref means the current board.
func ResolveBoard(m *board.Manager, ref string) (models.Board, error) {
	if strings.TrimSpace(ref) == "" {
		current, ok := m.CurrentBoard()
		if !ok {
			return models.Board{}, fmt.Errorf("%w: no board selected", board.ErrBoardNotFound)
		}
		return current, nil
	}
	boards := m.Boards()
	b, ok, err := resolve(boards, boards, ref,
		func(b models.Board) string { return b.ID },
		func(b models.Board) string { return b.Name })
	if err != nil {
		return models.Board{}, err
	}
	if !ok {
		return models.Board{}, fmt.Errorf("%w: %s", board.ErrBoardNotFound, ref)
	}
	return b, nil
}

// ResolveColumn finds a column by id or partial id on any board, or by name
// on the given board
func ResolveColumn(m *board.Manager, boardID, ref string) (models.Column, error) {
	all := m.Snapshot().Columns
	c, ok, err := resolve(all, m.Columns(boardID), ref,
		func(c models.Column) string { return c.ID },
		func(c models.Column) string { return c.Name })
	if err != nil {
		return models.Column{}, err
	}
	if !ok {
		return models.Column{}, fmt.Errorf("%w: %s", board.ErrColumnNotFound, ref)
	}
	return c, nil
}

// ResolveTask finds a task by id or partial id on any board, or by title on
// the given board
func ResolveTask(m *board.Manager, boardID, ref string) (models.Task, error) {
	all := m.Snapshot().Tasks
	var onBoard []models.Task
	for _, t := range all {
		if t.BoardID == boardID {
			onBoard = append(onBoard, t)
		}
	}
	t, ok, err := resolve(all, onBoard, ref,
		func(t models.Task) string { return t.ID },
		func(t models.Task) string { return t.Title })
	if err != nil {
		return models.Task{}, err
	}
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", board.ErrTaskNotFound, ref)
	}
	return t, nil
}

// ShortID returns the trailing, random part of an id for display
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[len(id)-8:]
}
