package board

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
)

const laneWidth = 28

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [board]",
		Short: "Print a board with its columns and tasks",
		Long: `Print a board as side-by-side lanes. Defaults to the current board.

Examples:
  kanban board show
  kanban board show Roadmap --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runShow),
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

type laneView struct {
	models.Column
	Tasks []models.Task `json:"tasks"`
}

type boardView struct {
	models.Board
	Columns []laneView `json:"columns"`
}

func runShow(env *handler.Env) error {
	m := env.CLI.App.Board
	var ref string
	if len(env.Args) > 0 {
		ref = env.Args[0]
	}
	b, err := cli.ResolveBoard(m, ref)
	if err != nil {
		return err
	}

	view := boardView{Board: b, Columns: []laneView{}}
	for _, c := range m.Columns(b.ID) {
		tasks := m.Tasks(c.ID)
		if tasks == nil {
			tasks = []models.Task{}
		}
		view.Columns = append(view.Columns, laneView{Column: c, Tasks: tasks})
	}

	return env.Formatter.Render(view, func() string { return renderBoard(view) })
}

func renderBoard(view boardView) string {
	header := styles.TitleStyle.Render(view.Name) + " " +
		styles.SubtitleStyle.Render("(ID: "+cli.ShortID(view.ID)+")")
	if len(view.Columns) == 0 {
		return header + "\n\nNo columns yet. Add one with: kanban column create <name>"
	}

	lanes := make([]string, 0, len(view.Columns))
	for _, lane := range view.Columns {
		lanes = append(lanes, renderLane(lane))
	}
	return header + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, lanes...)
}

func renderLane(lane laneView) string {
	var sb strings.Builder
	sb.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%s (%d)", lane.Name, len(lane.Tasks))))
	for _, t := range lane.Tasks {
		sb.WriteString("\n" + styles.RenderStatus(t.Status) + " " + t.Title)
		sb.WriteString("\n  " + styles.SubtitleStyle.Render(cli.ShortID(t.ID)))
	}
	return lipgloss.NewStyle().
		Width(laneWidth).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(sb.String())
}
