package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// UseCmd returns the board use subcommand
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use <board>",
		Short: "Select the current board",
		Long: `Select the board other commands default to. Viewers may switch boards.

The board may be given by name, full id or id fragment.

Examples:
  kanban board use Roadmap
  kanban board use 3f9a2c1d
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runUse),
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runUse(env *handler.Env) error {
	m := env.CLI.App.Board
	b, err := cli.ResolveBoard(m, env.Args[0])
	if err != nil {
		return err
	}
	if err := m.SelectBoard(env.Ctx, b.ID); err != nil {
		return err
	}
	return env.Formatter.Render(b, func() string {
		return styles.Success(fmt.Sprintf("Now using board '%s'", b.Name))
	})
}
