package theme

import "github.com/thenoetrevino/kanban/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Delete         string
	ColumnBorder   string
	TaskBorder     string
	SelectedBorder string
	Todo           string
	InProgress     string
	Done           string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	colors.ApplyDefaults()

	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	TaskBorder = colors.TaskBorder
	SelectedBorder = colors.SelectedBorder
	Todo = colors.Todo
	InProgress = colors.InProgress
	Done = colors.Done
}
