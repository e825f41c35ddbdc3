package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/kanban/internal/config"
)

// CreateTheme styles huh forms with the configured colors. The monochrome
// preset keeps huh's uncolored base theme.
func CreateTheme(colors config.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)
		if colors.Preset == "monochrome" {
			return s
		}

		c := func(v string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(v)) }
		accent, subtle, normal := lipgloss.Color(colors.Accent), lipgloss.Color(colors.Subtle), lipgloss.Color(colors.Normal)

		f := &s.Focused
		f.Base = f.Base.BorderForeground(accent)
		f.Title = c(colors.Title).Bold(true)
		f.Description = c(colors.Subtle)
		f.ErrorIndicator = c(colors.Delete)
		f.ErrorMessage = c(colors.Delete)

		// status select in the task form
		f.SelectSelector = c(colors.Accent)
		f.SelectedOption = c(colors.Create)
		f.UnselectedOption = c(colors.Normal)

		// yes/no buttons of the delete confirmation
		f.FocusedButton = f.FocusedButton.Foreground(lipgloss.Color(colors.Normal)).Background(accent).Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(normal).Background(subtle)

		f.TextInput.Cursor = c(colors.Accent)
		f.TextInput.Prompt = c(colors.Accent)
		f.TextInput.Placeholder = c(colors.Subtle)

		s.Blurred = s.Focused
		s.Blurred.Base = s.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		s.Blurred.Title = c(colors.Subtle)
		return s
	})
}
