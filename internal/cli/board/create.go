package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create <name>",
		Aliases: []string{"add"},
		Short:   "Create a new board",
		Long: `Create a new, empty board and make it the current board.
Requires an admin session.

Examples:
  # Human-readable output
  kanban board create "Roadmap"

  # Quiet mode for bash capture
  BOARD_ID=$(kanban board create "Roadmap" --quiet)
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runCreate),
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(env *handler.Env) error {
	b, err := env.CLI.App.Board.AddBoard(env.Ctx, env.Args[0])
	if err != nil {
		return err
	}
	return env.Formatter.Render(b, func() string {
		return styles.Success(fmt.Sprintf("Board '%s' created (ID: %s)", b.Name, cli.ShortID(b.ID)))
	})
}
