package board

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board>",
		Short: "Delete a board with its columns and tasks",
		Long: `Delete a board together with all of its columns and tasks.
Requires an admin session and asks for confirmation unless --yes is given.

Examples:
  kanban board delete Roadmap
  kanban board delete Roadmap --yes --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runDelete),
	}

	handler.AddYesFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(env *handler.Env) error {
	m := env.CLI.App.Board
	b, err := cli.ResolveBoard(m, env.Args[0])
	if err != nil {
		return err
	}
	if err := m.DeleteBoard(env.Ctx, b.ID); err != nil {
		return err
	}
	return env.Formatter.Render(b, func() string {
		return styles.Success(fmt.Sprintf("Board '%s' deleted", b.Name))
	})
}
