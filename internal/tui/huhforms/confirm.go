package huhforms

import "charm.land/huh/v2"

// CreateConfirmForm asks a single yes/no question, defaulting to no
func CreateConfirmForm(prompt string, confirm *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	))
}
