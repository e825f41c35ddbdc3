package task

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create <title>",
		Aliases: []string{"add"},
		Short:   "Create a new task",
		Long: `Create a task at the bottom of a column. Requires an admin session.
Without --column the task goes into the first column of the board.

Examples:
  # Simple task (human-readable output)
  kanban task create "Fix bug"

  # Into a named column with a description read from stdin
  echo "Steps to reproduce..." | kanban task create "Fix bug" --column Doing --description -

  # Quiet mode for bash capture
  TASK_ID=$(kanban task create "Fix bug" --status in-progress --quiet)
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().StringP("column", "c", "", "Column name or id (defaults to the first column)")
	cmd.Flags().StringP("description", "d", "", "Task description in markdown (use - for stdin)")
	cmd.Flags().StringP("status", "s", "", "Initial status: todo, in-progress or done")
	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(env *handler.Env) error {
	m := env.CLI.App.Board

	status, err := env.Flags.ParseStatus("status")
	if err != nil {
		return err
	}
	description, err := env.Flags.ParseStringOptional("description")
	if err != nil {
		return err
	}
	if description != nil && *description == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read description from stdin: %w", err)
		}
		text := string(data)
		description = &text
	}

	col, err := targetColumn(env)
	if err != nil {
		return err
	}

	task, err := m.AddTask(env.Ctx, col.ID, env.Args[0])
	if err != nil {
		return err
	}
	patch := models.TaskPatch{Description: description, Status: status}
	if !patch.IsEmpty() {
		if task, err = m.UpdateTask(env.Ctx, task.ID, patch); err != nil {
			return err
		}
	}

	return env.Formatter.Render(task, func() string {
		return styles.Success(fmt.Sprintf("Task '%s' created in column '%s' (ID: %s)", task.Title, col.Name, cli.ShortID(task.ID)))
	})
}

// targetColumn resolves --column, or picks the board's first column
func targetColumn(env *handler.Env) (models.Column, error) {
	m := env.CLI.App.Board
	if ref := env.Flags.GetString("column"); ref != "" {
		return cli.ResolveColumn(m, boardID(env), ref)
	}
	b, err := cli.ResolveBoard(m, env.Flags.GetString("board"))
	if err != nil {
		return models.Column{}, err
	}
	columns := m.Columns(b.ID)
	if len(columns) == 0 {
		return models.Column{}, fmt.Errorf("%w: board '%s' has no columns", board.ErrColumnNotFound, b.Name)
	}
	return columns[0], nil
}
