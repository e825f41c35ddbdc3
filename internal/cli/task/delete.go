package task

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <task>",
		Short: "Delete a task",
		Long: `Delete a task. Requires an admin session and asks for confirmation
unless --yes is given.

Examples:
  kanban task delete "Fix bug"
  kanban task delete 9c41e2ab --yes --quiet
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runDelete),
	}

	addBoardFlag(cmd)
	handler.AddYesFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(env *handler.Env) error {
	task, err := resolveTask(env, env.Args[0])
	if err != nil {
		return err
	}
	if err := env.CLI.App.Board.DeleteTask(env.Ctx, task.ID); err != nil {
		return err
	}
	return env.Formatter.Render(task, func() string {
		return styles.Success(fmt.Sprintf("Task '%s' deleted", task.Title))
	})
}
