package board

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/launcher"
)

// ViewCmd returns the board view subcommand
func ViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [board]",
		Short: "Open the interactive board viewer",
		Long: `Open the terminal viewer on the current board, or on the given board
after selecting it. Viewers can browse; editing keys need an admin session.

Examples:
  kanban board view
  kanban board view Roadmap
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runView),
	}
}

func runView(env *handler.Env) error {
	if len(env.Args) == 1 {
		m := env.CLI.App.Board
		b, err := cli.ResolveBoard(m, env.Args[0])
		if err != nil {
			return err
		}
		if err := m.SelectBoard(env.Ctx, b.ID); err != nil {
			return err
		}
	}
	return launcher.Launch(env.Ctx, env.CLI.App)
}
