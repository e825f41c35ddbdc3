package session

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
)

// PasswdCmd returns the passwd command
func PasswdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the admin password",
		Long: `Change the admin password. The new password needs at least 6 characters.
A successful change also starts an admin session.

Examples:
  kanban passwd
  kanban passwd --current admin --new s3cret!
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runPasswd),
	}

	cmd.Flags().String("current", "", "Current password")
	cmd.Flags().String("new", "", "New password")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runPasswd(env *handler.Env) error {
	svc := env.CLI.App.Auth

	current, newPassword := env.Flags.GetString("current"), env.Flags.GetString("new")
	confirm := newPassword
	if current == "" || newPassword == "" {
		confirm = ""
		if err := runForm(env, huhforms.CreateChangePasswordForm(&current, &newPassword, &confirm, true)); err != nil {
			return err
		}
	}

	if err := svc.ChangePassword(env.Ctx, current, newPassword, confirm); err != nil {
		return err
	}
	status, err := svc.Status(env.Ctx)
	if err != nil {
		return err
	}
	return env.Formatter.Render(status, func() string {
		return styles.Success("Password changed")
	})
}
