package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks of a board",
		Long: `List tasks grouped by column, in board order.

Examples:
  kanban task list
  kanban task list --column Doing
  kanban task list --status done --json
  kanban task list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}

	cmd.Flags().StringP("column", "c", "", "Only list tasks in this column")
	cmd.Flags().StringP("status", "s", "", "Only list tasks with this status")
	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(env *handler.Env) error {
	m := env.CLI.App.Board

	status, err := env.Flags.ParseStatus("status")
	if err != nil {
		return err
	}

	b, err := cli.ResolveBoard(m, env.Flags.GetString("board"))
	if err != nil {
		return err
	}
	columns := m.Columns(b.ID)
	if ref := env.Flags.GetString("column"); ref != "" {
		col, err := cli.ResolveColumn(m, b.ID, ref)
		if err != nil {
			return err
		}
		columns = []models.Column{col}
	}

	var tasks []models.Task
	grouped := make(map[string][]models.Task, len(columns))
	for _, col := range columns {
		for _, t := range m.Tasks(col.ID) {
			if status != nil && t.Status != *status {
				continue
			}
			tasks = append(tasks, t)
			grouped[col.ID] = append(grouped[col.ID], t)
		}
	}

	return cli.RenderList(env.Formatter, tasks, func() string {
		if len(tasks) == 0 {
			return fmt.Sprintf("No tasks found on board '%s'", b.Name)
		}
		var sb strings.Builder
		for _, col := range columns {
			if len(grouped[col.ID]) == 0 {
				continue
			}
			sb.WriteString(styles.LabelStyle.Render(col.Name) + "\n")
			for _, t := range grouped[col.ID] {
				fmt.Fprintf(&sb, "  %s %s %s\n", styles.RenderStatus(t.Status), t.Title,
					styles.SubtitleStyle.Render("("+cli.ShortID(t.ID)+")"))
			}
		}
		return strings.TrimRight(sb.String(), "\n")
	})
}
