package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Admin bool
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: the session role
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Kanban - viewer (read-only)"
	if props.Admin {
		leftText = "Kanban - admin"
	}
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, strings.Repeat(" ", gapWidth), rightRendered)
}
