package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/kanban/internal/models"
)

// CreateTaskForm creates a huh form for editing a task.
// The form uses pointers to update values in place.
func CreateTaskForm(
	title *string,
	description *string,
	status *models.Status,
	descriptionLines int,
) *huh.Form {
	statusOptions := make([]huh.Option[models.Status], 0, len(models.AllStatuses))
	for _, s := range models.AllStatuses {
		statusOptions = append(statusOptions, huh.NewOption(s.Label(), s))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(notBlank("title")).
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Enter task description (markdown)...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(description),

		huh.NewSelect[models.Status]().
			Key("status").
			Title("Status").
			Options(statusOptions...).
			Value(status),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(descriptionKeyMap()).WithShowHelp(false)
}

// descriptionKeyMap lets shift+enter break lines in the description next to
// huh's alt+enter and ctrl+j
func descriptionKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	return km
}
