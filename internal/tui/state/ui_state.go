package state

// Mode represents the current interaction mode of the viewer.
// Each mode determines which keys are active and which overlay is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	DeleteTaskConfirmMode               // Confirming task deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	AddTaskMode                         // Typing a new task title
	AddColumnMode                       // Creating a new column
	RenameColumnMode                    // Renaming the selected column
	HelpMode                            // Displaying help screen
)

// UsesLayers reports whether the mode draws a modal over the board
func (m Mode) UsesLayers() bool {
	return m != NormalMode
}

// UIState manages the user interface state.
// This includes navigation (column/task selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn int
	selectedTask   int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	// viewportSize is the number of columns that fit on the screen
	viewportSize int

	// taskScrollOffsets tracks the index of the first visible task per column ID
	taskScrollOffsets map[string]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1, // recalculated when width is set
		taskScrollOffsets: make(map[string]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the columns.
// This is terminal height minus tab bar and status bar, with a minimum of 5.
func (s *UIState) ContentHeight() int {
	const tabBarHeight = 3    // tabs + gap line
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-tabBarHeight-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible column.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = max(0, offset)
}

// ViewportSize returns the number of columns that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// ColumnWidth is the rendered width of one column including its spacing:
// 30 content + 2 padding + 2 border + 2 spacing.
const ColumnWidth = 36

// calculateViewportSize calculates how many columns fit in the terminal width,
// reserving 4 characters for margins and scroll indicators.
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const reservedWidth = 4
	s.viewportSize = max(1, (s.width-reservedWidth)/ColumnWidth)
}

// Clamp keeps the selection inside a board with columnsLen columns whose
// selected column holds tasksLen tasks, then scrolls it into view.
func (s *UIState) Clamp(columnsLen, tasksLen int) {
	if columnsLen == 0 {
		s.selectedColumn, s.selectedTask, s.viewportOffset = 0, 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), columnsLen-1)
	s.selectedTask = min(max(s.selectedTask, 0), max(tasksLen-1, 0))

	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
	s.EnsureSelectionVisible(s.selectedColumn)
}

// EnsureSelectionVisible adjusts the viewport so the selected column is visible.
func (s *UIState) EnsureSelectionVisible(selectedColumn int) {
	if selectedColumn < s.viewportOffset {
		s.viewportOffset = selectedColumn
	}
	if selectedColumn >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = selectedColumn - s.viewportSize + 1
	}
}

// ResetSelection resets column and task selection and the viewport.
// Called when switching boards.
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedTask = 0
	s.viewportOffset = 0
	clear(s.taskScrollOffsets)
}

// TaskScrollOffset returns the vertical scroll offset for a given column.
func (s *UIState) TaskScrollOffset(columnID string) int {
	return s.taskScrollOffsets[columnID]
}

// EnsureTaskVisible adjusts the scroll offset of a column so the selected
// task is among the visibleCount rendered cards.
func (s *UIState) EnsureTaskVisible(columnID string, selectedTaskIdx int, visibleCount int) {
	visibleCount = max(visibleCount, 1)
	offset := s.taskScrollOffsets[columnID]

	if selectedTaskIdx < offset {
		offset = selectedTaskIdx
	}
	if selectedTaskIdx >= offset+visibleCount {
		offset = selectedTaskIdx - visibleCount + 1
	}
	s.taskScrollOffsets[columnID] = max(0, offset)
}
