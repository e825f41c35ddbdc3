package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/kanban/internal/config"
)

// KeyMap holds the help bindings built from the configured key mappings.
// Key handling itself matches msg.String() against the mappings.
type KeyMap struct {
	PrevColumn    key.Binding
	NextColumn    key.Binding
	PrevTask      key.Binding
	NextTask      key.Binding
	PrevBoard     key.Binding
	NextBoard     key.Binding
	AddTask       key.Binding
	DeleteTask    key.Binding
	CycleStatus   key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	MoveTaskUp    key.Binding
	MoveTaskDown  key.Binding
	AddColumn     key.Binding
	RenameColumn  key.Binding
	DeleteColumn  key.Binding
	ShowHelp      key.Binding
	Quit          key.Binding
}

func binding(k, desc string, alt ...string) key.Binding {
	keys := append([]string{k}, alt...)
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(k, desc))
}

// NewKeyMap creates the bindings for km
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		PrevColumn:    binding(km.PrevColumn, "previous column", "left"),
		NextColumn:    binding(km.NextColumn, "next column", "right"),
		PrevTask:      binding(km.PrevTask, "previous task", "up"),
		NextTask:      binding(km.NextTask, "next task", "down"),
		PrevBoard:     binding(km.PrevBoard, "previous board"),
		NextBoard:     binding(km.NextBoard, "next board"),
		AddTask:       binding(km.AddTask, "add task"),
		DeleteTask:    binding(km.DeleteTask, "delete task"),
		CycleStatus:   binding(km.CycleStatus, "cycle status"),
		MoveTaskLeft:  binding(km.MoveTaskLeft, "move task left"),
		MoveTaskRight: binding(km.MoveTaskRight, "move task right"),
		MoveTaskUp:    binding(km.MoveTaskUp, "move task up"),
		MoveTaskDown:  binding(km.MoveTaskDown, "move task down"),
		AddColumn:     binding(km.AddColumn, "add column"),
		RenameColumn:  binding(km.RenameColumn, "rename column"),
		DeleteColumn:  binding(km.DeleteColumn, "delete column"),
		ShowHelp:      binding(km.ShowHelp, "toggle help"),
		Quit:          binding(km.Quit, "quit", "ctrl+c"),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask, k.PrevBoard, k.NextBoard},
		{k.AddTask, k.DeleteTask, k.CycleStatus, k.MoveTaskLeft, k.MoveTaskRight, k.MoveTaskUp, k.MoveTaskDown},
		{k.AddColumn, k.RenameColumn, k.DeleteColumn, k.ShowHelp, k.Quit},
	}
}
