package tui

import (
	"errors"
	"log/slog"
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// Update is the main message dispatcher
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWidth(msg.Width)
		m.uiState.SetHeight(msg.Height)
		m.uiState.Clamp(len(m.columns), len(m.selectedColumnTasks()))
		m.ensureTaskVisible()
	case RefreshMsg:
		slog.Debug("refreshing viewer", "event", msg.Event.Type, "sequence", msg.Event.SequenceID)
		m.reload()
		return m, m.subscribeToEvents()
	}

	// Forms need every message, not just key presses
	switch m.uiState.Mode() {
	case state.AddColumnMode, state.RenameColumnMode:
		return m.updateColumnForm(msg)
	case state.AddTaskMode:
		return m.updateTaskInput(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(keyMsg)
	}
	return m, nil
}

// handleKeyMsg dispatches a key press by mode
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.uiState.Mode() {
	case state.HelpMode:
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	case state.DeleteTaskConfirmMode, state.DeleteColumnConfirmMode:
		return m.handleDeleteConfirm(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notificationState.Clear()
	km := m.config.KeyMappings

	switch msg.String() {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)

	case km.PrevColumn, "left":
		m.selectColumn(m.uiState.SelectedColumn() - 1)
	case km.NextColumn, "right":
		m.selectColumn(m.uiState.SelectedColumn() + 1)
	case km.PrevTask, "up":
		m.selectTask(m.uiState.SelectedTask() - 1)
	case km.NextTask, "down":
		m.selectTask(m.uiState.SelectedTask() + 1)
	case km.PrevBoard:
		m.switchBoard(-1)
	case km.NextBoard:
		m.switchBoard(1)

	case km.MoveTaskLeft:
		m.moveTaskToColumn(-1)
	case km.MoveTaskRight:
		m.moveTaskToColumn(1)
	case km.MoveTaskUp:
		m.moveTaskWithinColumn(-1)
	case km.MoveTaskDown:
		m.moveTaskWithinColumn(1)
	case km.CycleStatus:
		m.cycleStatus()

	case km.AddTask:
		if _, ok := m.selectedColumn(); ok && m.admin {
			m.input.Reset()
			m.uiState.SetMode(state.AddTaskMode)
			return m, m.input.Focus()
		}
	case km.DeleteTask:
		if _, ok := m.selectedTask(); ok && m.admin {
			m.uiState.SetMode(state.DeleteTaskConfirmMode)
		}
	case km.AddColumn:
		if m.hasBoard && m.admin {
			return m.openColumnForm(state.AddColumnMode, "")
		}
	case km.RenameColumn:
		if col, ok := m.selectedColumn(); ok && m.admin {
			return m.openColumnForm(state.RenameColumnMode, col.Name)
		}
	case km.DeleteColumn:
		if _, ok := m.selectedColumn(); ok && m.admin {
			m.uiState.SetMode(state.DeleteColumnConfirmMode)
		}
	}
	return m, nil
}

func (m Model) selectColumn(i int) {
	if _, ok := m.columnAt(i); !ok {
		return
	}
	m.uiState.SetSelectedColumn(i)
	m.uiState.Clamp(len(m.columns), len(m.selectedColumnTasks()))
	m.ensureTaskVisible()
}

func (m Model) selectTask(i int) {
	if i < 0 || i >= len(m.selectedColumnTasks()) {
		return
	}
	m.uiState.SetSelectedTask(i)
	m.ensureTaskVisible()
}

// switchBoard selects the board delta positions away, wrapping around
func (m *Model) switchBoard(delta int) {
	if len(m.boards) < 2 {
		return
	}
	current := slices.IndexFunc(m.boards, func(b models.Board) bool { return b.ID == m.board.ID })
	next := m.boards[((current+delta)%len(m.boards)+len(m.boards))%len(m.boards)]

	ctx, cancel := m.dbContext()
	defer cancel()
	if err := m.app.Board.SelectBoard(ctx, next.ID); err != nil {
		m.handleError(err)
		return
	}
	m.reload()
}

// moveTaskToColumn appends the selected task to the column delta positions away
func (m *Model) moveTaskToColumn(delta int) {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	target, ok := m.columnAt(m.uiState.SelectedColumn() + delta)
	if !ok {
		return
	}

	ctx, cancel := m.dbContext()
	defer cancel()
	if err := m.app.Board.MoveTask(ctx, task.ID, target.ID, ""); err != nil {
		m.handleError(err)
		return
	}
	m.reloadFollowing(task.ID)
}

// moveTaskWithinColumn swaps the selected task with its neighbour
func (m *Model) moveTaskWithinColumn(delta int) {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	tasks := m.selectedColumnTasks()
	i := m.uiState.SelectedTask()
	if i+delta < 0 || i+delta >= len(tasks) {
		return
	}

	// Moving down lands before the task two places below, or at the end
	var before string
	switch {
	case delta < 0:
		before = tasks[i-1].ID
	case i+2 < len(tasks):
		before = tasks[i+2].ID
	}

	ctx, cancel := m.dbContext()
	defer cancel()
	if err := m.app.Board.MoveTask(ctx, task.ID, task.ColumnID, before); err != nil {
		m.handleError(err)
		return
	}
	m.reloadFollowing(task.ID)
}

func (m *Model) cycleStatus() {
	task, ok := m.selectedTask()
	if !ok {
		return
	}
	next := task.Status.Next()

	ctx, cancel := m.dbContext()
	defer cancel()
	if _, err := m.app.Board.UpdateTask(ctx, task.ID, models.TaskPatch{Status: &next}); err != nil {
		m.handleError(err)
		return
	}
	m.reload()
}

// handleDeleteConfirm answers the y/n prompt. The prompt already asked, so
// the manager's confirmer is told to approve.
func (m Model) handleDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.uiState.Mode()

	switch msg.String() {
	case "y", "Y":
		m.uiState.SetMode(state.NormalMode)

		ctx, cancel := m.dbContext()
		defer cancel()
		ctx = cli.WithAssumeYes(ctx, true)

		var err error
		if mode == state.DeleteTaskConfirmMode {
			if task, ok := m.selectedTask(); ok {
				err = m.app.Board.DeleteTask(ctx, task.ID)
			}
		} else if col, ok := m.selectedColumn(); ok {
			err = m.app.Board.DeleteColumn(ctx, col.ID)
		}
		if err != nil {
			m.handleError(err)
		}
		m.reload()
	case "n", "N", "esc":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) openColumnForm(mode state.Mode, name string) (tea.Model, tea.Cmd) {
	m.formState.FormColumnName = name
	m.formState.ColumnForm = huhforms.CreateColumnForm(&m.formState.FormColumnName, m.board.Name, mode == state.RenameColumnMode).
		WithTheme(huhforms.CreateTheme(m.config.ColorScheme))
	m.uiState.SetMode(mode)
	return m, m.formState.ColumnForm.Init()
}

func (m Model) closeColumnForm() {
	m.formState.ColumnForm = nil
	m.formState.FormColumnName = ""
	m.uiState.SetMode(state.NormalMode)
}

// updateColumnForm forwards messages to the column form and saves it on completion
func (m Model) updateColumnForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.formState.ColumnForm == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.closeColumnForm()
		return m, nil
	}

	model, cmd := m.formState.ColumnForm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.formState.ColumnForm = form
	}

	switch m.formState.ColumnForm.State {
	case huh.StateCompleted:
		m.saveColumnForm()
		m.closeColumnForm()
		return m, nil
	case huh.StateAborted:
		m.closeColumnForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) saveColumnForm() {
	name := m.formState.FormColumnName

	ctx, cancel := m.dbContext()
	defer cancel()

	if m.uiState.Mode() == state.RenameColumnMode {
		if col, ok := m.selectedColumn(); ok {
			if err := m.app.Board.RenameColumn(ctx, col.ID, name); err != nil {
				m.handleError(err)
			}
		}
		m.reload()
		return
	}

	col, err := m.app.Board.AddColumn(ctx, m.board.ID, name)
	if err != nil {
		m.handleError(err)
		return
	}
	m.reload()
	m.selectColumn(slices.IndexFunc(m.columns, func(c models.Column) bool { return c.ID == col.ID }))
}

// updateTaskInput feeds the title input; enter saves, esc cancels
func (m Model) updateTaskInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.input.Blur()
			m.input.Reset()
			m.uiState.SetMode(state.NormalMode)
			return m, nil
		case "enter":
			title := m.input.Value()
			m.input.Blur()
			m.input.Reset()
			m.uiState.SetMode(state.NormalMode)
			m.addTask(title)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addTask(title string) {
	col, ok := m.selectedColumn()
	if !ok {
		return
	}

	ctx, cancel := m.dbContext()
	defer cancel()
	task, err := m.app.Board.AddTask(ctx, col.ID, title)
	if err != nil {
		m.handleError(err)
		return
	}
	m.reloadFollowing(task.ID)
}

// handleError shows err in the tab bar. Read-only rejections are dropped:
// the status bar already says the session cannot edit.
func (m Model) handleError(err error) {
	if errors.Is(err, board.ErrReadOnly) {
		slog.Debug("viewer edit ignored", "error", err)
		return
	}
	slog.Error("viewer action failed", "error", err)
	m.notificationState.Add(state.LevelError, err.Error())
}
