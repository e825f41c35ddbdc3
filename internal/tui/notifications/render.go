// Package notifications renders the one-line message shown in the tab bar.
package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/state"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// icon and color per level
func decoration(level state.NotificationLevel) (string, string) {
	switch level {
	case state.LevelWarning:
		return "⚠", theme.InProgress
	case state.LevelError:
		return "✕", theme.Delete
	default:
		return "•", theme.Highlight
	}
}

// Render draws n as a bold single line, truncated to maxWidth cells when
// maxWidth is positive
func Render(n state.Notification, maxWidth int) string {
	icon, color := decoration(n.Level)
	text := icon + " " + n.Message

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
	if maxWidth > 2 && lipgloss.Width(text) > maxWidth-2 {
		text = truncate(text, maxWidth-2)
	}
	return style.Render(text)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
