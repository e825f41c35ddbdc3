package board

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long: `List all boards in creation order. The current board is marked with *.

Examples:
  kanban board list
  kanban board list --json
  kanban board list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(env *handler.Env) error {
	m := env.CLI.App.Board
	boards := m.Boards()
	current, _ := m.CurrentBoard()

	return cli.RenderList(env.Formatter, boards, func() string {
		if len(boards) == 0 {
			return "No boards yet. Create one with: kanban board create <name>"
		}
		var sb strings.Builder
		sb.WriteString(styles.TitleStyle.Render("Boards") + "\n")
		for _, b := range boards {
			marker := " "
			if b.ID == current.ID {
				marker = "*"
			}
			columns := m.Columns(b.ID)
			tasks := 0
			for _, c := range columns {
				tasks += len(m.Tasks(c.ID))
			}
			fmt.Fprintf(&sb, "%s %s %s\n", marker, b.Name,
				styles.SubtitleStyle.Render(fmt.Sprintf("(ID: %s, %d columns, %d tasks)", cli.ShortID(b.ID), len(columns), tasks)))
		}
		return strings.TrimRight(sb.String(), "\n")
	})
}
