package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <column> <new-name>",
		Short: "Rename a column",
		Long: `Rename a column. Requires an admin session.

Examples:
  kanban column rename "Review" "Code Review"
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.Command(runRename),
	}

	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(env *handler.Env) error {
	col, err := resolveColumn(env, env.Args[0])
	if err != nil {
		return err
	}
	m := env.CLI.App.Board
	if err := m.RenameColumn(env.Ctx, col.ID, env.Args[1]); err != nil {
		return err
	}
	renamed, err := m.Column(col.ID)
	if err != nil {
		return err
	}
	return env.Formatter.Render(renamed, func() string {
		return styles.Success(fmt.Sprintf("Column '%s' renamed to '%s'", col.Name, renamed.Name))
	})
}
