package column

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create <name>",
		Aliases: []string{"add"},
		Short:   "Append a column to a board",
		Long: `Append a new column at the right end of a board. Requires an admin session.

Examples:
  # Add to the current board
  kanban column create "Review"

  # Add to a specific board, capturing the id
  COLUMN_ID=$(kanban column create "Review" --board Roadmap --quiet)
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runCreate),
	}

	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(env *handler.Env) error {
	b, err := targetBoard(env)
	if err != nil {
		return err
	}
	col, err := env.CLI.App.Board.AddColumn(env.Ctx, b.ID, env.Args[0])
	if err != nil {
		return err
	}
	return env.Formatter.Render(col, func() string {
		return styles.Success(fmt.Sprintf("Column '%s' created on board '%s' (ID: %s)", col.Name, b.Name, cli.ShortID(col.ID)))
	})
}
