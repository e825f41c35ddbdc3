package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
)

const columnNameLimit = 64

// CreateColumnForm asks for a column name on boardName. With rename set the
// title changes and name arrives prefilled.
func CreateColumnForm(name *string, boardName string, rename bool) *huh.Form {
	title := "New column"
	if rename {
		title = "Rename column"
	}

	input := huh.NewInput().
		Key("name").
		Title(title).
		Description("on " + boardName).
		Placeholder("Column name...").
		CharLimit(columnNameLimit).
		Validate(notBlank("column name")).
		Value(name)

	return huh.NewForm(huh.NewGroup(input)).WithShowHelp(false)
}

// notBlank rejects values that are empty once trimmed
func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " cannot be empty")
		}
		return nil
	}
}
