package task

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/components"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <task>",
		Short: "Show a task with its rendered description",
		Long: `Show one task as a card. The description is rendered as markdown.

Examples:
  kanban task show "Fix bug"
  kanban task show 9c41e2ab --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.Command(runShow),
	}

	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

type taskDetail struct {
	models.Task
	ColumnName string `json:"columnName"`
	BoardName  string `json:"boardName"`
}

func runShow(env *handler.Env) error {
	m := env.CLI.App.Board
	task, err := resolveTask(env, env.Args[0])
	if err != nil {
		return err
	}

	detail := taskDetail{Task: task}
	if col, err := m.Column(task.ColumnID); err == nil {
		detail.ColumnName = col.Name
	}
	if b, err := m.Board(task.BoardID); err == nil {
		detail.BoardName = b.Name
	}

	return env.Formatter.Render(detail, func() string { return renderCard(detail) })
}

func renderCard(d taskDetail) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(d.Title) + " " + styles.RenderStatus(d.Status) + "\n\n")

	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("ID:"), styles.ValueStyle.Render(d.ID))
	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Board:"), styles.ValueStyle.Render(d.BoardName))
	fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Column:"), styles.ValueStyle.Render(d.ColumnName))
	if !d.CreatedAt.IsZero() {
		fmt.Fprintf(&content, "%s %s\n", styles.LabelStyle.Render("Created:"),
			styles.SubtitleStyle.Render(d.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM")))
	}

	content.WriteString(styles.SectionStyle.Render("Description") + "\n")
	content.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: d.Description,
		Width:       styles.CardWidth - 6,
	}))

	return styles.RenderCard(content.String())
}
