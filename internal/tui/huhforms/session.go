package huhforms

import (
	"fmt"

	"charm.land/huh/v2"
)

// CreateLoginForm prompts for the admin password
func CreateLoginForm(username string, password *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("password").
			Title(fmt.Sprintf("Password for %s", username)).
			EchoMode(huh.EchoModePassword).
			Value(password),
	))
}

// CreateChangePasswordForm prompts for the current password and the new one
// twice. Validation of the values is left to the caller so every rule is
// reported the same way in and out of the form.
func CreateChangePasswordForm(current, newPassword, confirm *string, askCurrent bool) *huh.Form {
	var fields []huh.Field
	if askCurrent {
		fields = append(fields,
			huh.NewInput().
				Key("current").
				Title("Current password").
				EchoMode(huh.EchoModePassword).
				Value(current),
		)
	}
	fields = append(fields,
		huh.NewInput().
			Key("new").
			Title("New password").
			Description("At least 6 characters").
			EchoMode(huh.EchoModePassword).
			Value(newPassword),
		huh.NewInput().
			Key("confirm").
			Title("Confirm new password").
			EchoMode(huh.EchoModePassword).
			Value(confirm),
	)
	return huh.NewForm(huh.NewGroup(fields...))
}
