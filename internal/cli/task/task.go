package task

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/models"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func addBoardFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("board", "b", "", "Board name or id used to resolve names (defaults to the current board)")
}

// boardID returns the --board board, or the current one. Names only resolve
// on that board, so a missing board is not an error here.
func boardID(env *handler.Env) string {
	b, err := cli.ResolveBoard(env.CLI.App.Board, env.Flags.GetString("board"))
	if err != nil {
		return ""
	}
	return b.ID
}

func resolveTask(env *handler.Env, ref string) (models.Task, error) {
	return cli.ResolveTask(env.CLI.App.Board, boardID(env), ref)
}
