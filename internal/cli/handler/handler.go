// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
)

// Env is what a command body receives
type Env struct {
	Ctx       context.Context
	CLI       *cli.CLI
	Formatter *cli.OutputFormatter
	Flags     *FlagParser
	Args      []string
}

// Func is a command body. Errors it returns are reported through the
// formatter and mapped to exit codes.
type Func func(env *Env) error

// AddYesFlag registers --yes for commands that ask for confirmation
func AddYesFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(fn Func) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := cli.FormatterFromCmd(cmd)

		if cmd.Flags().Lookup("yes") != nil {
			yes, _ := cmd.Flags().GetBool("yes")
			ctx = cli.WithAssumeYes(ctx, yes)
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.HandleError(err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("failed to close CLI", "error", err)
			}
		}()

		return formatter.HandleError(fn(&Env{
			Ctx:       ctx,
			CLI:       cliInstance,
			Formatter: formatter,
			Flags:     NewFlagParser(cmd),
			Args:      args,
		}))
	}
}
