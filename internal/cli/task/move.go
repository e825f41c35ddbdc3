package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task>",
		Short: "Move a task within or across columns",
		Long: `Move a task. With --before it is placed in front of that task when
staying in its column; otherwise it goes to the bottom of the target column.
Without --column the task stays in its own column. Requires an admin session.

Examples:
  # To the bottom of another column
  kanban task move "Fix bug" --column Done

  # Reorder within its column
  kanban task move "Fix bug" --before "Write docs"
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runMove),
	}

	cmd.Flags().StringP("column", "c", "", "Target column name or id")
	cmd.Flags().String("before", "", "Place the task in front of this task")
	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(env *handler.Env) error {
	m := env.CLI.App.Board
	task, err := resolveTask(env, env.Args[0])
	if err != nil {
		return err
	}

	column, err := m.Column(task.ColumnID)
	if err != nil {
		return err
	}
	if ref := env.Flags.GetString("column"); ref != "" {
		if column, err = cli.ResolveColumn(m, lookupBoard(env, task), ref); err != nil {
			return err
		}
	}

	var beforeID string
	if ref := env.Flags.GetString("before"); ref != "" {
		before, err := cli.ResolveTask(m, lookupBoard(env, task), ref)
		if err != nil {
			return err
		}
		beforeID = before.ID
	}

	if err := m.MoveTask(env.Ctx, task.ID, column.ID, beforeID); err != nil {
		return err
	}
	moved, err := m.Task(task.ID)
	if err != nil {
		return err
	}
	return env.Formatter.Render(moved, func() string {
		return styles.Success(fmt.Sprintf("Task '%s' moved to '%s' at position %d", moved.Title, column.Name, moved.Order+1))
	})
}

// lookupBoard is the board names resolve on: --board when given, otherwise
// the task's own board
func lookupBoard(env *handler.Env, task models.Task) string {
	if env.Flags.GetString("board") != "" {
		return boardID(env)
	}
	return task.BoardID
}
