// Package board implements the board state manager: CRUD and ordering over
// boards, columns and tasks, plus the current board selection.
//
// The transition functions in this file are pure: they take a State and return
// a new one, never modifying the input. Manager layers persistence, permission
// checks, confirmation and change notification on top of them.
package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thenoetrevino/kanban/internal/models"
)

// State is the complete board data set
type State struct {
	Boards         []models.Board
	Columns        []models.Column
	Tasks          []models.Task
	CurrentBoardID string
}

// Clone returns a deep copy whose slices can be modified freely
func (s State) Clone() State {
	return State{
		Boards:         slices.Clone(s.Boards),
		Columns:        slices.Clone(s.Columns),
		Tasks:          slices.Clone(s.Tasks),
		CurrentBoardID: s.CurrentBoardID,
	}
}

func (s State) boardIndex(id string) int {
	return slices.IndexFunc(s.Boards, func(b models.Board) bool { return b.ID == id })
}

func (s State) columnIndex(id string) int {
	return slices.IndexFunc(s.Columns, func(c models.Column) bool { return c.ID == id })
}

func (s State) taskIndex(id string) int {
	return slices.IndexFunc(s.Tasks, func(t models.Task) bool { return t.ID == id })
}

// fallbackBoardID picks the board the selection falls back to
func (s State) fallbackBoardID() string {
	if len(s.Boards) == 0 {
		return ""
	}
	return s.Boards[0].ID
}

// AddBoard appends b and makes it the current board
func AddBoard(s State, b models.Board) (State, error) {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return s, ErrEmptyName
	}
	next := s.Clone()
	next.Boards = append(next.Boards, b)
	next.CurrentBoardID = b.ID
	return next, nil
}

// DeleteBoard removes the board with all its columns and tasks.
// When the deleted board was current, the selection falls back to the first
// remaining board, or to none.
func DeleteBoard(s State, id string) (State, error) {
	if s.boardIndex(id) < 0 {
		return s, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}

	next := State{CurrentBoardID: s.CurrentBoardID}
	for _, b := range s.Boards {
		if b.ID != id {
			next.Boards = append(next.Boards, b)
		}
	}
	for _, c := range s.Columns {
		if c.BoardID != id {
			next.Columns = append(next.Columns, c)
		}
	}
	for _, t := range s.Tasks {
		if t.BoardID != id {
			next.Tasks = append(next.Tasks, t)
		}
	}
	if next.CurrentBoardID == id || next.boardIndex(next.CurrentBoardID) < 0 {
		next.CurrentBoardID = next.fallbackBoardID()
	}
	return next, nil
}

// SelectBoard makes id the current board
func SelectBoard(s State, id string) (State, error) {
	if s.boardIndex(id) < 0 {
		return s, fmt.Errorf("%w: %s", ErrBoardNotFound, id)
	}
	next := s.Clone()
	next.CurrentBoardID = id
	return next, nil
}

// AddColumn appends c to the end of its board.
// Its Order becomes one past the highest order on the board, or 0 for the first column.
func AddColumn(s State, c models.Column) (State, models.Column, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return s, models.Column{}, ErrEmptyName
	}
	if s.boardIndex(c.BoardID) < 0 {
		return s, models.Column{}, fmt.Errorf("%w: %s", ErrBoardNotFound, c.BoardID)
	}
	c.Order = nextColumnOrder(s, c.BoardID)

	next := s.Clone()
	next.Columns = append(next.Columns, c)
	return next, c, nil
}

// RenameColumn overwrites the column name.
// A blank name leaves the state untouched and returns ErrEmptyName.
func RenameColumn(s State, id, name string) (State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, ErrEmptyName
	}
	idx := s.columnIndex(id)
	if idx < 0 {
		return s, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
	}
	next := s.Clone()
	next.Columns[idx].Name = name
	return next, nil
}

// DeleteColumn removes the column and its tasks, then renumbers the
// remaining columns of the board so their orders stay dense.
func DeleteColumn(s State, id string) (State, error) {
	idx := s.columnIndex(id)
	if idx < 0 {
		return s, fmt.Errorf("%w: %s", ErrColumnNotFound, id)
	}
	boardID := s.Columns[idx].BoardID

	next := State{CurrentBoardID: s.CurrentBoardID, Boards: slices.Clone(s.Boards)}
	for _, c := range s.Columns {
		if c.ID != id {
			next.Columns = append(next.Columns, c)
		}
	}
	for _, t := range s.Tasks {
		if t.ColumnID != id {
			next.Tasks = append(next.Tasks, t)
		}
	}
	compactColumns(&next, boardID)
	return next, nil
}

// MoveColumn removes source from its board's ordered column list and reinserts
// it at target's index, then renumbers the board 0..n-1.
// Moving right lands the column after target, moving left lands it before.
func MoveColumn(s State, sourceID, targetID string) (State, error) {
	si := s.columnIndex(sourceID)
	if si < 0 {
		return s, fmt.Errorf("%w: %s", ErrColumnNotFound, sourceID)
	}
	ti := s.columnIndex(targetID)
	if ti < 0 {
		return s, fmt.Errorf("%w: %s", ErrColumnNotFound, targetID)
	}
	if sourceID == targetID {
		return s, nil
	}
	boardID := s.Columns[si].BoardID
	if s.Columns[ti].BoardID != boardID {
		return s, ErrBoardMismatch
	}

	ordered := columnsOf(s, boardID)
	from := slices.IndexFunc(ordered, func(c models.Column) bool { return c.ID == sourceID })
	to := slices.IndexFunc(ordered, func(c models.Column) bool { return c.ID == targetID })

	moved := ordered[from]
	ordered = slices.Delete(ordered, from, from+1)
	ordered = slices.Insert(ordered, min(to, len(ordered)), moved)

	next := s.Clone()
	applyColumnOrder(&next, ordered)
	return next, nil
}

// AddTask appends t to the end of its column.
// The board id is taken from the owning column, status defaults to todo.
func AddTask(s State, t models.Task) (State, models.Task, error) {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return s, models.Task{}, ErrEmptyTitle
	}
	ci := s.columnIndex(t.ColumnID)
	if ci < 0 {
		return s, models.Task{}, fmt.Errorf("%w: %s", ErrColumnNotFound, t.ColumnID)
	}
	if t.Status == "" {
		t.Status = models.StatusTodo
	}
	if !t.Status.Valid() {
		return s, models.Task{}, fmt.Errorf("%w: %q", models.ErrInvalidStatus, t.Status)
	}
	t.BoardID = s.Columns[ci].BoardID
	t.Order = nextTaskOrder(s, t.ColumnID)

	next := s.Clone()
	next.Tasks = append(next.Tasks, t)
	return next, t, nil
}

// UpdateTask shallow-merges patch into the task
func UpdateTask(s State, id string, patch models.TaskPatch) (State, models.Task, error) {
	idx := s.taskIndex(id)
	if idx < 0 {
		return s, models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return s, models.Task{}, ErrEmptyTitle
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return s, models.Task{}, fmt.Errorf("%w: %q", models.ErrInvalidStatus, *patch.Status)
	}

	next := s.Clone()
	next.Tasks[idx] = patch.Apply(next.Tasks[idx])
	return next, next.Tasks[idx], nil
}

// DeleteTask removes the task and closes the gap it leaves in its column
func DeleteTask(s State, id string) (State, error) {
	idx := s.taskIndex(id)
	if idx < 0 {
		return s, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	columnID := s.Tasks[idx].ColumnID

	next := s.Clone()
	next.Tasks = slices.Delete(next.Tasks, idx, idx+1)
	compactTasks(&next, columnID)
	return next, nil
}

// MoveTask repositions a task.
//
// Within its own column the task is removed from the ordered list and
// reinserted before beforeTaskID (or at the end when beforeTaskID is empty or
// not in the column), then the column is renumbered 0..n-1.
//
// Into another column the task is appended after the target's highest order
// (beforeTaskID is ignored) and the source column is compacted.
//
// An unknown task or target column leaves the state untouched.
func MoveTask(s State, taskID, targetColumnID, beforeTaskID string) (State, error) {
	ti := s.taskIndex(taskID)
	if ti < 0 {
		return s, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	tci := s.columnIndex(targetColumnID)
	if tci < 0 {
		return s, fmt.Errorf("%w: %s", ErrColumnNotFound, targetColumnID)
	}
	sourceColumnID := s.Tasks[ti].ColumnID

	if sourceColumnID == targetColumnID {
		if beforeTaskID == taskID {
			return s, nil
		}
		source := tasksOf(s, sourceColumnID)
		from := slices.IndexFunc(source, func(t models.Task) bool { return t.ID == taskID })
		moved := source[from]
		ordered := slices.Delete(source, from, from+1)
		at := len(ordered)
		if beforeTaskID != "" {
			if i := slices.IndexFunc(ordered, func(t models.Task) bool { return t.ID == beforeTaskID }); i >= 0 {
				at = i
			}
		}
		ordered = slices.Insert(ordered, at, moved)

		next := s.Clone()
		applyTaskOrder(&next, ordered)
		return next, nil
	}

	next := s.Clone()
	next.Tasks[ti].Order = nextTaskOrder(s, targetColumnID)
	next.Tasks[ti].ColumnID = targetColumnID
	next.Tasks[ti].BoardID = s.Columns[tci].BoardID
	compactTasks(&next, sourceColumnID)
	return next, nil
}

// Normalize repairs a loaded state: drops columns whose board is gone and
// tasks whose column is gone, realigns task board ids with their column,
// renumbers every board's columns and every column's tasks densely, and
// points the selection at an existing board.
func Normalize(s State) State {
	next := State{Boards: slices.Clone(s.Boards), CurrentBoardID: s.CurrentBoardID}

	boards := make(map[string]bool, len(s.Boards))
	for _, b := range s.Boards {
		boards[b.ID] = true
	}
	columnBoard := make(map[string]string, len(s.Columns))
	for _, c := range s.Columns {
		if boards[c.BoardID] {
			next.Columns = append(next.Columns, c)
			columnBoard[c.ID] = c.BoardID
		}
	}
	for _, t := range s.Tasks {
		boardID, ok := columnBoard[t.ColumnID]
		if !ok {
			continue
		}
		t.BoardID = boardID
		if !t.Status.Valid() {
			t.Status = models.StatusTodo
		}
		next.Tasks = append(next.Tasks, t)
	}

	for _, b := range next.Boards {
		compactColumns(&next, b.ID)
	}
	for _, c := range next.Columns {
		compactTasks(&next, c.ID)
	}

	if next.boardIndex(next.CurrentBoardID) < 0 {
		next.CurrentBoardID = next.fallbackBoardID()
	}
	return next
}
