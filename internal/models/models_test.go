package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
		wantErr  bool
	}{
		{"todo", StatusTodo, false},
		{"TODO", StatusTodo, false},
		{" to do ", StatusTodo, false},
		{"in-progress", StatusInProgress, false},
		{"in_progress", StatusInProgress, false},
		{"doing", StatusInProgress, false},
		{"done", StatusDone, false},
		{"completed", StatusDone, false},
		{"blocked", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStatus) {
					t.Fatalf("expected ErrInvalidStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if Status("archived").Valid() {
		t.Error("unknown status should not be valid")
	}
}

func TestStatus_NextCyclesThroughAll(t *testing.T) {
	s := StatusTodo
	seen := map[Status]bool{}
	for range AllStatuses {
		seen[s] = true
		s = s.Next()
	}
	if s != StatusTodo {
		t.Errorf("expected cycle to return to todo, got %q", s)
	}
	if len(seen) != len(AllStatuses) {
		t.Errorf("expected to visit %d statuses, visited %d", len(AllStatuses), len(seen))
	}
	if Status("bogus").Next() != StatusTodo {
		t.Error("unknown status should restart at todo")
	}
}

// ============================================================================
// TaskPatch Tests
// ============================================================================

func TestTaskPatch_Apply(t *testing.T) {
	task := Task{ID: "t1", Title: "old", Description: "desc", Status: StatusTodo}
	title := "new"
	done := StatusDone

	got := TaskPatch{Title: &title, Status: &done}.Apply(task)

	if got.Title != "new" || got.Status != StatusDone {
		t.Errorf("patch not applied: %+v", got)
	}
	if got.Description != "desc" {
		t.Errorf("untouched field changed: %q", got.Description)
	}
	if task.Title != "old" {
		t.Error("Apply must not modify the original task")
	}
}

func TestTaskPatch_IsEmpty(t *testing.T) {
	if !(TaskPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	d := ""
	if (TaskPatch{Description: &d}).IsEmpty() {
		t.Error("patch clearing the description is not empty")
	}
}

// ============================================================================
// Serialization Tests
// ============================================================================

func TestTask_JSONFieldNames(t *testing.T) {
	task := Task{
		ID:        "t1",
		Title:     "Write docs",
		ColumnID:  "c1",
		BoardID:   "b1",
		Order:     2,
		Status:    StatusInProgress,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"columnId":"c1"`, `"boardId":"b1"`, `"order":2`, `"status":"in-progress"`, `"createdAt"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("expected %s in %s", field, data)
		}
	}
}

// ============================================================================
// ID Tests
// ============================================================================

func TestNewID_UniqueAndOrdered(t *testing.T) {
	ids := make([]string, 100)
	seen := make(map[string]bool)
	for i := range ids {
		ids[i] = NewID()
		if seen[ids[i]] {
			t.Fatalf("duplicate id %s", ids[i])
		}
		seen[ids[i]] = true
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("ids not time ordered: %s >= %s", ids[i-1], ids[i])
		}
	}
}
