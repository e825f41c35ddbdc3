package column

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns of a board",
		Long: `List all columns of a board, left to right.

Examples:
  kanban column list
  kanban column list --board Roadmap --json
  kanban column list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}

	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(env *handler.Env) error {
	b, err := targetBoard(env)
	if err != nil {
		return err
	}
	m := env.CLI.App.Board
	columns := m.Columns(b.ID)

	return cli.RenderList(env.Formatter, columns, func() string {
		if len(columns) == 0 {
			return fmt.Sprintf("No columns found on board '%s'", b.Name)
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "Columns on board '%s':\n", b.Name)
		for i, col := range columns {
			fmt.Fprintf(&sb, "  %d. %s %s\n", i+1, col.Name,
				styles.SubtitleStyle.Render(fmt.Sprintf("(ID: %s, %d tasks)", cli.ShortID(col.ID), len(m.Tasks(col.ID)))))
		}
		return strings.TrimRight(sb.String(), "\n")
	})
}
