package session

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the session may edit",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runStatus),
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runStatus(env *handler.Env) error {
	status, err := env.CLI.App.Auth.Status(env.Ctx)
	if err != nil {
		return err
	}
	return env.Formatter.Render(status, func() string { return describe(status) })
}
