// Package cli holds helpers for command tests. It is separate from testutil
// so that packages imported by internal/cli can still use testutil.
package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/board"
	kcli "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
)

// confirmByFlag approves deletions only when the command ran with --yes,
// standing in for the interactive prompt
var confirmByFlag = board.ConfirmFunc(func(ctx context.Context, _ string) (bool, error) {
	return kcli.AssumeYes(ctx), nil
})

// SetupCLITest returns an in-memory App with an admin session
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()
	a := SetupViewerCLITest(t)
	testutil.LoginAdmin(t, a)
	return a
}

// SetupViewerCLITest returns an in-memory App without an admin session
func SetupViewerCLITest(t *testing.T) *app.App {
	t.Helper()
	return testutil.SetupTestApp(t, app.WithConfirmer(confirmByFlag))
}

// CreateTestBoard wraps testutil.CreateTestBoard for CLI tests
func CreateTestBoard(t *testing.T, a *app.App, name string, columns ...string) (string, []string) {
	t.Helper()
	return testutil.CreateTestBoard(t, a.Board, name, columns...)
}

// CreateTestTask wraps testutil.CreateTestTask for CLI tests
func CreateTestTask(t *testing.T, a *app.App, columnID, title string) string {
	t.Helper()
	return testutil.CreateTestTask(t, a.Board, columnID, title)
}
