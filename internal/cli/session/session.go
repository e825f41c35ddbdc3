// Package session holds the commands that switch between the viewer and
// admin roles.
package session

import (
	"errors"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/auth"
	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
)

// Commands returns the session commands, registered at the top level
func Commands() []*cobra.Command {
	return []*cobra.Command{LoginCmd(), LogoutCmd(), PasswdCmd(), StatusCmd()}
}

// runForm runs a prompt themed with the configured colors. A prompt that
// is aborted or cannot run counts as a cancellation.
func runForm(env *handler.Env, form *huh.Form) error {
	form = form.WithTheme(huhforms.CreateTheme(env.CLI.Config.ColorScheme))
	if err := form.RunWithContext(env.Ctx); err != nil {
		return errors.Join(board.ErrCancelled, err)
	}
	return nil
}

func describe(s auth.Session) string {
	role := styles.SubtitleStyle.Render("viewer (read-only)")
	if s.Admin {
		role = styles.SuccessStyle.Render("admin")
	}
	out := styles.LabelStyle.Render("Session:") + " " + role
	if !s.PasswordChanged {
		out += "\n" + styles.WarningStyle.Render("The default admin password is still in use; log in to replace it.")
	}
	return out
}
