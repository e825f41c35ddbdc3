package column

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func addBoardFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("board", "b", "", "Board name or id (defaults to the current board)")
}

// targetBoard resolves --board, falling back to the current board
func targetBoard(env *handler.Env) (models.Board, error) {
	return cli.ResolveBoard(env.CLI.App.Board, env.Flags.GetString("board"))
}

// resolveColumn resolves a column reference against the --board board.
// Full and partial ids match on any board.
func resolveColumn(env *handler.Env, ref string) (models.Column, error) {
	var boardID string
	if b, err := targetBoard(env); err == nil {
		boardID = b.ID
	}
	return cli.ResolveColumn(env.CLI.App.Board, boardID, ref)
}
