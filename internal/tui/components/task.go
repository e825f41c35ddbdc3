package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// RenderTask renders a single task as a fixed-size card
//
//	┌────────────────────────────┐
//	│ {Task Title}               │
//	│ [status]                   │
//	└────────────────────────────┘
func RenderTask(task models.Task, selected bool) string {
	title := truncateTitle(task.Title, taskTitleMaxLength)

	content := lipgloss.NewStyle().Bold(true).Render(" "+title) + "\n " + RenderStatus(task.Status)

	style := TaskStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(content)
}

// RenderStatus renders a status badge in its configured color
func RenderStatus(status models.Status) string {
	color := theme.Todo
	switch status {
	case models.StatusInProgress:
		color = theme.InProgress
	case models.StatusDone:
		color = theme.Done
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render("[" + status.Label() + "]")
}

// truncateTitle shortens s to n runes followed by a subtle ellipsis
func truncateTitle(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n]) + SubtleStyle.Render("...")
}
