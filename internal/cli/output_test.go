package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ============================================================================
// Test Helpers
// ============================================================================

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

// capture redirects *target (os.Stdout or os.Stderr) while fn runs
func capture(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	*target = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		outC <- buf.String()
	}()

	fn()

	_ = w.Close()
	*target = old
	return <-outC
}

// ============================================================================
// Success / Render Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, data any)
	}{
		{
			name: "map data",
			data: map[string]any{"test": "value"},
			validate: func(t *testing.T, data any) {
				if data.(map[string]any)["test"] != "value" {
					t.Errorf("Expected data.test to be 'value', got %v", data)
				}
			},
		},
		{
			name: "task uses json tags",
			data: models.Task{ID: "t-1", Title: "Write docs", Status: models.StatusInProgress},
			validate: func(t *testing.T, data any) {
				task := data.(map[string]any)
				if task["title"] != "Write docs" || task["status"] != "in-progress" {
					t.Errorf("Unexpected task payload: %v", task)
				}
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, data any) {
				if data != nil {
					t.Errorf("Expected data to be nil, got %v", data)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}
			var err error
			output := capture(t, &os.Stdout, func() { err = formatter.Success(tt.data) })
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}

			var result map[string]any
			if err := json.Unmarshal([]byte(output), &result); err != nil {
				t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
			}
			if result["success"] != true {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	formatter := &OutputFormatter{Quiet: true}

	output := capture(t, &os.Stdout, func() { _ = formatter.Success(mockDataWithID{ID: "abc-123"}) })
	if strings.TrimSpace(output) != "abc-123" {
		t.Errorf("Expected id output, got %q", output)
	}

	output = capture(t, &os.Stdout, func() { _ = formatter.Success(mockDataWithoutID{Name: "x"}) })
	if output != "" {
		t.Errorf("Expected no output for data without an id, got %q", output)
	}
}

func TestOutputFormatter_Render_HumanReadable(t *testing.T) {
	formatter := &OutputFormatter{}

	output := capture(t, &os.Stdout, func() {
		_ = formatter.Render(mockDataWithID{ID: "1"}, func() string { return "custom text" })
	})
	if output != "custom text\n" {
		t.Errorf("Expected human text, got %q", output)
	}

	output = capture(t, &os.Stdout, func() { _ = formatter.Success(models.StatusDone) })
	if !strings.Contains(output, "done") {
		t.Errorf("Expected pretty printed value, got %q", output)
	}
}

func TestRenderList(t *testing.T) {
	items := []mockDataWithID{{ID: "a"}, {ID: "b"}}

	output := capture(t, &os.Stdout, func() {
		_ = RenderList(&OutputFormatter{Quiet: true}, items, func() string { return "unused" })
	})
	if output != "a\nb\n" {
		t.Errorf("Expected one id per line, got %q", output)
	}

	output = capture(t, &os.Stdout, func() {
		_ = RenderList(&OutputFormatter{JSON: true}, []mockDataWithID(nil), func() string { return "unused" })
	})
	if !strings.Contains(output, `"data":[]`) {
		t.Errorf("Expected empty JSON array for nil list, got %q", output)
	}
}

// ============================================================================
// Error Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	output := capture(t, &os.Stdout, func() {
		_ = formatter.ErrorWithSuggestion("TASK_NOT_FOUND", "task not found", "List tasks")
	})

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, output)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "TASK_NOT_FOUND" || errData["suggestion"] != "List tasks" {
		t.Errorf("Unexpected error payload: %v", errData)
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	formatter := &OutputFormatter{}
	output := capture(t, &os.Stderr, func() { _ = formatter.Error("TEST_ERROR", "something went wrong") })

	if !strings.Contains(output, "Error: something went wrong") {
		t.Errorf("Expected error message, got %q", output)
	}
	if strings.Contains(output, "Suggestion:") {
		t.Errorf("Expected no suggestion in Error() output, got %q", output)
	}
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestHandleError_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"read only", board.ErrReadOnly, ExitPermission},
		{"cancelled", board.ErrCancelled, ExitCancelled},
		{"wrapped not found", fmt.Errorf("%w: abc", board.ErrTaskNotFound), ExitNotFound},
		{"ambiguous", ErrAmbiguousRef, ExitNotFound},
		{"validation", board.ErrEmptyTitle, ExitValidation},
		{"invalid status", models.ErrInvalidStatus, ExitValidation},
		{"unknown", errors.New("disk on fire"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{}
			var err error
			capture(t, &os.Stderr, func() { err = formatter.HandleError(tt.err) })

			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("Expected *ExitError, got %T", err)
			}
			if exitErr.Code != tt.code {
				t.Errorf("Expected exit code %d, got %d", tt.code, exitErr.Code)
			}
			if !errors.Is(err, tt.err) {
				t.Error("Expected the original error to stay in the chain")
			}
			if ExitCodeFor(err) != tt.code {
				t.Errorf("ExitCodeFor = %d, want %d", ExitCodeFor(err), tt.code)
			}
		})
	}
}

func TestHandleError_Nil(t *testing.T) {
	if err := (&OutputFormatter{}).HandleError(nil); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
	if code := ExitCodeFor(nil); code != ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %d", code)
	}
}

func TestUsageError(t *testing.T) {
	var err error
	output := capture(t, &os.Stdout, func() {
		err = (&OutputFormatter{JSON: true}).UsageError("nothing to update", "pass a flag")
	})
	if ExitCodeFor(err) != ExitUsage {
		t.Errorf("Expected ExitUsage, got %d", ExitCodeFor(err))
	}
	if !strings.Contains(output, "USAGE_ERROR") {
		t.Errorf("Expected USAGE_ERROR code in output, got %q", output)
	}
}

func TestFormatterFromCmd(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddOutputFlags(cmd)
	if err := cmd.ParseFlags([]string{"--json"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	f := FormatterFromCmd(cmd)
	if !f.JSON || f.Quiet {
		t.Errorf("Expected JSON only, got %+v", f)
	}
}
