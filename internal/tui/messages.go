package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/events"
)

// RefreshMsg is sent when the board or session changed
type RefreshMsg struct {
	Event events.Event
}

// subscribeToEvents waits for the next bus event. A closed channel or a
// cancelled context ends the subscription.
func (m Model) subscribeToEvents() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}
	ch, ctx := m.eventChan, m.ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
