package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column> <target-column>",
		Short: "Move a column to another column's position",
		Long: `Move a column so it takes the position of the target column.
Columns in between shift by one. Requires an admin session.

Examples:
  # Make "Done" the first column
  kanban column move Done Todo
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.Command(runMove),
	}

	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runMove(env *handler.Env) error {
	source, err := resolveColumn(env, env.Args[0])
	if err != nil {
		return err
	}
	target, err := resolveColumn(env, env.Args[1])
	if err != nil {
		return err
	}
	m := env.CLI.App.Board
	if err := m.MoveColumn(env.Ctx, source.ID, target.ID); err != nil {
		return err
	}
	columns := m.Columns(source.BoardID)
	return cli.RenderList(env.Formatter, columns, func() string {
		return styles.Success(fmt.Sprintf("Column '%s' moved to position %d", source.Name, target.Order+1))
	})
}
