package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/layers"
	"github.com/thenoetrevino/kanban/internal/tui/notifications"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

const dialogWidth = 50

// View renders the board with the current mode's modal on top
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layerStack := []*lipgloss.Layer{lipgloss.NewLayer(m.viewBoard())}
	if m.uiState.Mode().UsesLayers() {
		if modal := m.modalLayer(); modal != nil {
			layerStack = append(layerStack, modal)
		}
	}

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// viewBoard renders tabs, columns and the status bar
func (m Model) viewBoard() string {
	tabs := make([]string, len(m.boards))
	selected := -1
	for i, b := range m.boards {
		tabs[i] = b.Name
		if m.hasBoard && b.ID == m.board.ID {
			selected = i
		}
	}

	var notification string
	if n, ok := m.notificationState.Current(); ok {
		notification = notifications.Render(n, m.uiState.Width()/2)
	}

	header := components.RenderTabs(tabs, selected, m.uiState.Width(), notification)
	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width: m.uiState.Width(),
		Admin: m.admin,
	})

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewColumns(), "", statusBar)
}

func (m Model) viewColumns() string {
	height := m.uiState.ContentHeight()
	emptyStyle := components.SubtleStyle.Height(height).Padding(1, 2)

	switch {
	case !m.hasBoard:
		return emptyStyle.Render("No boards yet. Create one with: kanban board create <name>")
	case len(m.columns) == 0:
		return emptyStyle.Render(fmt.Sprintf("No columns on '%s'. Press %s to add one.", m.board.Name, m.config.KeyMappings.AddColumn))
	}

	offset := m.uiState.ViewportOffset()
	end := min(offset+m.uiState.ViewportSize(), len(m.columns))

	rendered := make([]string, 0, end-offset+2)
	rendered = append(rendered, m.scrollIndicator(offset > 0, "◀", height))
	for i := offset; i < end; i++ {
		col := m.columns[i]
		isSelected := i == m.uiState.SelectedColumn()
		selectedTask := -1
		if isSelected {
			selectedTask = m.uiState.SelectedTask()
		}
		rendered = append(rendered, components.RenderColumn(
			col, m.tasks[col.ID], isSelected, selectedTask, height, m.uiState.TaskScrollOffset(col.ID),
		))
	}
	rendered = append(rendered, m.scrollIndicator(end < len(m.columns), "▶", height))

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) scrollIndicator(show bool, arrow string, height int) string {
	style := components.IndicatorStyle.Width(2).Height(height).AlignVertical(lipgloss.Center)
	if !show {
		arrow = ""
	}
	return style.Render(arrow)
}

// modalLayer renders the overlay for the current mode
func (m Model) modalLayer() *lipgloss.Layer {
	var content string

	switch m.uiState.Mode() {
	case state.HelpMode:
		content = components.HelpBoxStyle.Render(
			components.TitleStyle.Render("Keyboard Shortcuts") + "\n\n" +
				m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" +
				components.SubtleStyle.Render("press any key to close"))

	case state.DeleteTaskConfirmMode:
		task, ok := m.selectedTask()
		if !ok {
			return nil
		}
		content = components.DeleteConfirmBoxStyle.Width(dialogWidth).Render(
			fmt.Sprintf("Delete task '%s'?\n\n[y]es  [n]o", task.Title))

	case state.DeleteColumnConfirmMode:
		col, ok := m.selectedColumn()
		if !ok {
			return nil
		}
		content = components.DeleteConfirmBoxStyle.Width(dialogWidth).Render(
			fmt.Sprintf("Delete column '%s' and its %d task(s)?\n\n[y]es  [n]o", col.Name, len(m.tasks[col.ID])))

	case state.AddTaskMode:
		col, _ := m.selectedColumn()
		content = components.CreateInputBoxStyle.Width(dialogWidth).Render(
			components.TitleStyle.Render("New task in "+col.Name) + "\n\n" +
				m.input.View() + "\n\n" +
				components.SubtleStyle.Render("enter: save  esc: cancel"))

	case state.AddColumnMode, state.RenameColumnMode:
		if m.formState.ColumnForm == nil {
			return nil
		}
		title, style := "New Column", components.CreateInputBoxStyle
		if m.uiState.Mode() == state.RenameColumnMode {
			title, style = "Rename Column", components.EditInputBoxStyle
		}
		content = style.Width(dialogWidth).Render(title + "\n\n" + m.formState.ColumnForm.View())
	}

	return layers.CreateCenteredLayer(content, m.uiState.Width(), m.uiState.Height())
}
