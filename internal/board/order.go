package board

import (
	"sort"

	"github.com/thenoetrevino/kanban/internal/models"
)

// sortColumns orders columns by Order, keeping insertion order on ties
func sortColumns(cols []models.Column) {
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].Order < cols[j].Order })
}

// sortTasks orders tasks by Order, keeping insertion order on ties
func sortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Order < tasks[j].Order })
}

// columnsOf returns copies of the board's columns in display order
func columnsOf(s State, boardID string) []models.Column {
	var out []models.Column
	for _, c := range s.Columns {
		if c.BoardID == boardID {
			out = append(out, c)
		}
	}
	sortColumns(out)
	return out
}

// tasksOf returns copies of the column's tasks in display order
func tasksOf(s State, columnID string) []models.Task {
	var out []models.Task
	for _, t := range s.Tasks {
		if t.ColumnID == columnID {
			out = append(out, t)
		}
	}
	sortTasks(out)
	return out
}

// nextColumnOrder is one past the highest order in the board, or 0 when empty
func nextColumnOrder(s State, boardID string) int {
	next := 0
	for _, c := range s.Columns {
		if c.BoardID == boardID && c.Order+1 > next {
			next = c.Order + 1
		}
	}
	return next
}

// nextTaskOrder is one past the highest order in the column, or 0 when empty
func nextTaskOrder(s State, columnID string) int {
	next := 0
	for _, t := range s.Tasks {
		if t.ColumnID == columnID && t.Order+1 > next {
			next = t.Order + 1
		}
	}
	return next
}

// applyColumnOrder writes position i of ordered into the matching column of s.
// s.Columns must already be a private copy.
func applyColumnOrder(s *State, ordered []models.Column) {
	pos := make(map[string]int, len(ordered))
	for i, c := range ordered {
		pos[c.ID] = i
	}
	for i := range s.Columns {
		if p, ok := pos[s.Columns[i].ID]; ok {
			s.Columns[i].Order = p
		}
	}
}

// applyTaskOrder writes position i of ordered into the matching task of s.
// s.Tasks must already be a private copy.
func applyTaskOrder(s *State, ordered []models.Task) {
	pos := make(map[string]int, len(ordered))
	for i, t := range ordered {
		pos[t.ID] = i
	}
	for i := range s.Tasks {
		if p, ok := pos[s.Tasks[i].ID]; ok {
			s.Tasks[i].Order = p
		}
	}
}

// compactColumns renumbers the board's columns to 0..n-1 keeping relative order
func compactColumns(s *State, boardID string) {
	applyColumnOrder(s, columnsOf(*s, boardID))
}

// compactTasks renumbers the column's tasks to 0..n-1 keeping relative order
func compactTasks(s *State, columnID string) {
	applyTaskOrder(s, tasksOf(*s, columnID))
}
