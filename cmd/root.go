package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/board"
	"github.com/thenoetrevino/kanban/internal/cli/column"
	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/cli/serve"
	"github.com/thenoetrevino/kanban/internal/cli/session"
	"github.com/thenoetrevino/kanban/internal/cli/task"
	"github.com/thenoetrevino/kanban/internal/launcher"
	"github.com/thenoetrevino/kanban/internal/logging"
)

func newRootCmd() *cobra.Command {
	var (
		debug     bool
		ephemeral bool
	)

	rootCmd := &cobra.Command{
		Use:   "kanban",
		Short: "Kanban - a local kanban board",
		Long: `Kanban keeps boards, columns and tasks in a local database.

Run without a command to open the interactive board. Anyone may look;
editing requires an admin session (kanban login).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := logging.Init(debug); err != nil {
				fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
			}
			if ephemeral {
				cmd.SetContext(cli.WithEphemeral(cmd.Context()))
			}
		},
		RunE: handler.Command(func(env *handler.Env) error {
			return launcher.Launch(env.Ctx, env.CLI.App)
		}),
	}
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep state in memory and discard it on exit")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Write debug logs to ~/.kanban/logs/kanban.log")

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(session.Commands()...)

	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	return run(context.Background(), os.Args[1:])
}

func run(ctx context.Context, args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Anything that did not pass through a command body is an argument or flag problem
	fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	fmt.Fprintln(os.Stderr, "Run 'kanban --help' for usage.")
	return cli.ExitUsage
}
