package session

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/tui/huhforms"
)

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start an admin session",
		Long: `Log in as the admin to enable editing.

While the default password is in use, logging in requires choosing a new
password of at least 6 characters; the session starts once it is changed.

Examples:
  kanban login
  kanban login --password "$KANBAN_PASSWORD"

  # First login, replacing the default password non-interactively
  kanban login --password admin --new-password s3cret!
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runLogin),
	}

	cmd.Flags().StringP("username", "u", "", "Admin username (defaults to the configured one)")
	cmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().String("new-password", "", "Replacement for the default password on first login")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runLogin(env *handler.Env) error {
	svc := env.CLI.App.Auth

	username := env.Flags.GetString("username")
	if username == "" {
		username = env.CLI.Config.Admin.Username
	}
	password, err := env.Flags.ParseStringOptional("password")
	if err != nil {
		return err
	}
	if password == nil {
		var entered string
		if err := runForm(env, huhforms.CreateLoginForm(username, &entered)); err != nil {
			return err
		}
		password = &entered
	}

	result, err := svc.Login(env.Ctx, username, *password)
	if err != nil {
		return err
	}
	if result.MustChangePassword {
		newPassword, confirm := env.Flags.GetString("new-password"), ""
		if newPassword != "" {
			confirm = newPassword
		} else {
			current := *password
			if err := runForm(env, huhforms.CreateChangePasswordForm(&current, &newPassword, &confirm, false)); err != nil {
				return err
			}
		}
		if err := svc.ChangePassword(env.Ctx, *password, newPassword, confirm); err != nil {
			return err
		}
	}

	status, err := svc.Status(env.Ctx)
	if err != nil {
		return err
	}
	return env.Formatter.Render(status, func() string {
		msg := "Logged in as " + username
		if result.MustChangePassword {
			msg += " (password changed)"
		}
		return styles.Success(msg)
	})
}
