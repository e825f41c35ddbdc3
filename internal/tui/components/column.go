package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/theme"
)

// VisibleTasks returns how many task cards fit in a column of the given height
func VisibleTasks(height int) int {
	const columnOverhead = columnBorderOverhead + headerLines + topIndicatorLines + 1
	return max((height-columnOverhead)/TaskCardHeight, 1)
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Name} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
//
// selectedTaskIdx is ignored unless selected is true. height is the total
// box height (0 for auto) and scrollOffset the index of the first visible task.
func RenderColumn(column models.Column, tasks []models.Task, selected bool, selectedTaskIdx int, height int, scrollOffset int) string {
	header := fmt.Sprintf("%s (%d)", column.Name, len(tasks))
	content := TitleStyle.Render(header) + "\n"

	if len(tasks) == 0 {
		content += lipgloss.NewStyle().Padding(1, 0).Render(SubtleStyle.Render("No tasks"))
	} else {
		maxVisible := len(tasks)
		if height > 0 {
			maxVisible = VisibleTasks(height)
		}
		scrollOffset = min(max(scrollOffset, 0), max(len(tasks)-maxVisible, 0))

		if scrollOffset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := min(scrollOffset+maxVisible, len(tasks))
		cards := make([]string, 0, endIdx-scrollOffset)
		for i, task := range tasks[scrollOffset:endIdx] {
			cards = append(cards, RenderTask(task, selected && scrollOffset+i == selectedTaskIdx))
		}
		content += strings.Join(cards, "\n")

		if endIdx < len(tasks) {
			usedLines := headerLines + topIndicatorLines + len(cards)*TaskCardHeight
			if remaining := height - columnBorderOverhead - usedLines - 2; remaining > 0 {
				content += strings.Repeat("\n", remaining)
			}
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if height > 0 {
		// Height sets the area inside the borders
		style = style.Height(height - 2)
	}

	return style.Render(content)
}
