package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const tabNameMaxLength = 20

// RenderTabs draws one tab per board name, the notification right aligned
// and a gap line filling the rest of width. selectedIdx is -1 when no board
// is current. Tabs that do not fit are dropped from the end, or from the
// start when that is needed to keep the selected tab visible, and replaced
// by a "+N" marker.
func RenderTabs(names []string, selectedIdx int, width int, notification string) string {
	rendered := make([]string, len(names))
	for i, name := range names {
		name = truncateTitle(name, tabNameMaxLength)
		if i == selectedIdx {
			rendered[i] = ActiveTabStyle.Render(name)
		} else {
			rendered[i] = TabStyle.Render(name)
		}
	}

	budget := width - lipgloss.Width(notification) - 2
	row := fitTabs(rendered, max(selectedIdx, 0), budget)

	gap := TabGapStyle.Render(strings.Repeat(" ", max(width-lipgloss.Width(row)-lipgloss.Width(notification)-2, 0)))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, notification)
}

// fitTabs keeps the longest run of tabs containing keep that fits budget
func fitTabs(tabs []string, keep, budget int) string {
	if len(tabs) == 0 {
		return ""
	}
	keep = min(keep, len(tabs)-1)

	start, end := keep, keep+1
	used := lipgloss.Width(tabs[keep])
	for {
		grew := false
		if end < len(tabs) && used+lipgloss.Width(tabs[end])+markerWidth <= budget {
			used += lipgloss.Width(tabs[end])
			end++
			grew = true
		}
		if start > 0 && used+lipgloss.Width(tabs[start-1])+markerWidth <= budget {
			start--
			used += lipgloss.Width(tabs[start])
			grew = true
		}
		if !grew {
			break
		}
	}

	parts := append([]string{}, tabs[start:end]...)
	if hidden := start + len(tabs) - end; hidden > 0 {
		parts = append(parts, SubtleStyle.Render(fmt.Sprintf(" +%d", hidden)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

const markerWidth = 4
