// Package tui is the interactive board viewer. It renders the current board
// and forwards every edit to the board manager, which rejects them for
// read-only sessions.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/components"
	"github.com/thenoetrevino/kanban/internal/tui/state"
)

// Timeout for store operations triggered by a key press
const timeoutDB = 10 * time.Second

const eventBuffer = 32

// formState holds the huh column form and the value it writes to.
// It lives behind a pointer so the bound field survives Model copies.
type formState struct {
	ColumnForm     *huh.Form
	FormColumnName string
}

// Model is the bubbletea model of the board viewer
type Model struct {
	ctx    context.Context
	app    *app.App
	config *config.Config

	uiState           *state.UIState
	notificationState *state.NotificationState
	formState         *formState

	keys  KeyMap
	help  help.Model
	input textinput.Model

	// snapshot of the manager, refreshed after every change
	boards   []models.Board
	board    models.Board
	hasBoard bool
	columns  []models.Column
	tasks    map[string][]models.Task
	admin    bool

	eventChan   <-chan events.Event
	unsubscribe func()
}

// New creates the viewer model and subscribes it to the app's event bus
func New(ctx context.Context, a *app.App) Model {
	components.InitStyles(a.Config.ColorScheme)

	input := textinput.New()
	input.Placeholder = "Task title..."
	input.CharLimit = 200

	m := Model{
		ctx:               ctx,
		app:               a,
		config:            a.Config,
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
		formState:         &formState{},
		keys:              NewKeyMap(a.Config.KeyMappings),
		help:              help.New(),
		input:             input,
		tasks:             map[string][]models.Task{},
	}
	m.eventChan, m.unsubscribe = a.Bus.Subscribe(eventBuffer)
	m.reload()
	return m
}

// Init starts listening for board changes
func (m Model) Init() tea.Cmd {
	return m.subscribeToEvents()
}

// Close stops the event subscription
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// dbContext creates a child context with timeout for store operations
func (m Model) dbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, timeoutDB)
}

// reload copies the manager's state into the model and keeps the selection
// on the same column and task when they still exist.
func (m *Model) reload() {
	m.reloadFollowing(m.selectedTaskID())
}

// reloadFollowing reloads and selects taskID wherever it now lives
func (m *Model) reloadFollowing(taskID string) {
	columnID := ""
	if col, ok := m.selectedColumn(); ok {
		columnID = col.ID
	}
	previousBoard := m.board.ID

	m.admin = m.app.Auth.IsAdmin(m.ctx)
	m.boards = m.app.Board.Boards()
	m.board, m.hasBoard = m.app.Board.CurrentBoard()
	m.columns = nil
	clear(m.tasks)
	if m.hasBoard {
		m.columns = m.app.Board.Columns(m.board.ID)
		for _, col := range m.columns {
			m.tasks[col.ID] = m.app.Board.Tasks(col.ID)
		}
	}

	if m.board.ID != previousBoard {
		m.uiState.ResetSelection()
	}

	found := false
	for ci, col := range m.columns {
		for ti, task := range m.tasks[col.ID] {
			if taskID != "" && task.ID == taskID {
				m.uiState.SetSelectedColumn(ci)
				m.uiState.SetSelectedTask(ti)
				found = true
			}
		}
		if !found && col.ID == columnID {
			m.uiState.SetSelectedColumn(ci)
		}
	}

	tasksLen := 0
	if col, ok := m.columnAt(m.uiState.SelectedColumn()); ok {
		tasksLen = len(m.tasks[col.ID])
	}
	m.uiState.Clamp(len(m.columns), tasksLen)
	m.ensureTaskVisible()
}

func (m Model) columnAt(i int) (models.Column, bool) {
	if i < 0 || i >= len(m.columns) {
		return models.Column{}, false
	}
	return m.columns[i], true
}

func (m Model) selectedColumn() (models.Column, bool) {
	return m.columnAt(m.uiState.SelectedColumn())
}

func (m Model) selectedColumnTasks() []models.Task {
	col, ok := m.selectedColumn()
	if !ok {
		return nil
	}
	return m.tasks[col.ID]
}

func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.selectedColumnTasks()
	i := m.uiState.SelectedTask()
	if i < 0 || i >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[i], true
}

func (m Model) selectedTaskID() string {
	task, ok := m.selectedTask()
	if !ok {
		return ""
	}
	return task.ID
}

func (m Model) ensureTaskVisible() {
	if col, ok := m.selectedColumn(); ok {
		m.uiState.EnsureTaskVisible(col.ID, m.uiState.SelectedTask(), components.VisibleTasks(m.uiState.ContentHeight()))
	}
}
