package session

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
)

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the admin session",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runLogout),
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runLogout(env *handler.Env) error {
	svc := env.CLI.App.Auth
	if err := svc.Logout(env.Ctx); err != nil {
		return err
	}
	status, err := svc.Status(env.Ctx)
	if err != nil {
		return err
	}
	return env.Formatter.Render(status, func() string {
		return styles.Success("Logged out, the board is now read-only")
	})
}
