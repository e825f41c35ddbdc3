package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column>",
		Short: "Delete a column and its tasks",
		Long: `Delete a column together with its tasks.
Requires an admin session and asks for confirmation unless --yes is given.

Examples:
  kanban column delete Review
  kanban column delete Review --yes
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
	col, err := resolveColumn(env, env.Args[0])
	if err != nil {
		return err
	}
	if err := env.CLI.App.Board.DeleteColumn(env.Ctx, col.ID); err != nil {
		return err
	}
	return env.Formatter.Render(col, func() string {
		return styles.Success(fmt.Sprintf("Column '%s' deleted", col.Name))
	})
}
