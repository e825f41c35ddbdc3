package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kcli "github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/testutil/cli"
)

func TestCreateBoard_Integration(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"Roadmap"})
	require.NoError(t, err)
	assert.Contains(t, output, "Board 'Roadmap' created")

	boards := app.Board.Boards()
	require.Len(t, boards, 1)
	assert.Equal(t, "Roadmap", boards[0].Name)

	current, ok := app.Board.CurrentBoard()
	require.True(t, ok)
	assert.Equal(t, boards[0].ID, current.ID)
}

func TestCreateBoard_Quiet(t *testing.T) {
	app := cli.SetupCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"Roadmap", "--quiet"})
	require.NoError(t, err)

	boards := app.Board.Boards()
	require.Len(t, boards, 1)
	assert.Equal(t, boards[0].ID, strings.TrimSpace(output))
}

func TestCreateBoard_ViewerIsRejected(t *testing.T) {
	app := cli.SetupViewerCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"Roadmap", "--json"})
	require.Error(t, err)
	assert.Equal(t, kcli.ExitPermission, kcli.ExitCodeFor(err))

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "READ_ONLY", errData["code"])
	assert.Empty(t, app.Board.Boards())
}

func TestCreateBoard_EmptyName(t *testing.T) {
	app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{"   "})
	require.Error(t, err)
	assert.Equal(t, kcli.ExitValidation, kcli.ExitCodeFor(err))
}

func TestListBoards_Integration(t *testing.T) {
	app := cli.SetupCLITest(t)
	firstID, _ := cli.CreateTestBoard(t, app, "First", "Todo")
	secondID, _ := cli.CreateTestBoard(t, app, "Second")

	t.Run("human", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		// The newest board becomes current
		assert.Contains(t, output, "  First")
		assert.Contains(t, output, "* Second")
		assert.Contains(t, output, "1 columns")
	})

	t.Run("json", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
		require.NoError(t, err)
		result := testutil.ParseJSON(t, output)
		data := result["data"].([]any)
		require.Len(t, data, 2)
		assert.Equal(t, firstID, data[0].(map[string]any)["id"])
	})

	t.Run("quiet", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, firstID+"\n"+secondID+"\n", output)
	})
}

func TestListBoards_Empty(t *testing.T) {
	app := cli.SetupViewerCLITest(t)

	output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	result := testutil.ParseJSON(t, output)
	assert.Equal(t, []any{}, result["data"])
}

func TestUseBoard_ViewerMaySwitch(t *testing.T) {
	app := cli.SetupCLITest(t)
	firstID, _ := cli.CreateTestBoard(t, app, "First")
	cli.CreateTestBoard(t, app, "Second")
	require.NoError(t, app.Auth.Logout(t.Context()))

	output, err := cli.ExecuteCLICommand(t, app, UseCmd(), []string{"first"})
	require.NoError(t, err)
	assert.Contains(t, output, "Now using board 'First'")

	current, _ := app.Board.CurrentBoard()
	assert.Equal(t, firstID, current.ID)
}

func TestUseBoard_Unknown(t *testing.T) {
	app := cli.SetupCLITest(t)
	cli.CreateTestBoard(t, app, "First")

	_, err := cli.ExecuteCLICommand(t, app, UseCmd(), []string{"nope"})
	require.Error(t, err)
	assert.Equal(t, kcli.ExitNotFound, kcli.ExitCodeFor(err))
}

func TestDeleteBoard_Integration(t *testing.T) {
	t.Run("without --yes is cancelled", func(t *testing.T) {
		app := cli.SetupCLITest(t)
		cli.CreateTestBoard(t, app, "Doomed", "Todo")

		_, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"Doomed"})
		require.Error(t, err)
		assert.Equal(t, kcli.ExitCancelled, kcli.ExitCodeFor(err))
		assert.Len(t, app.Board.Boards(), 1)
	})

	t.Run("with --yes cascades", func(t *testing.T) {
		app := cli.SetupCLITest(t)
		_, cols := cli.CreateTestBoard(t, app, "Doomed", "Todo")
		cli.CreateTestTask(t, app, cols[0], "Task")

		output, err := cli.ExecuteCLICommand(t, app, DeleteCmd(), []string{"Doomed", "--yes"})
		require.NoError(t, err)
		assert.Contains(t, output, "Board 'Doomed' deleted")

		state := app.Board.Snapshot()
		assert.Empty(t, state.Boards)
		assert.Empty(t, state.Columns)
		assert.Empty(t, state.Tasks)
	})
}

func TestShowBoard_Integration(t *testing.T) {
	app := cli.SetupCLITest(t)
	_, cols := cli.CreateTestBoard(t, app, "Roadmap", "Todo", "Done")
	cli.CreateTestTask(t, app, cols[0], "Write docs")

	output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "Roadmap")
	assert.Contains(t, output, "Todo (1)")
	assert.Contains(t, output, "Done (0)")
	assert.Contains(t, output, "Write docs")

	output, err = cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--json"})
	require.NoError(t, err)
	data := testutil.ParseJSON(t, output)["data"].(map[string]any)
	columns := data["columns"].([]any)
	require.Len(t, columns, 2)
	first := columns[0].(map[string]any)
	assert.Equal(t, "Todo", first["name"])
	assert.Len(t, first["tasks"].([]any), 1)
}
