// Package serve runs the HTTP liveness endpoint.
package serve

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli/handler"
	"github.com/thenoetrevino/kanban/internal/server"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve GET /api/ping and Prometheus metrics",
		Long: `Serve the liveness endpoint GET /api/ping, which answers {"message":"pong"},
and GET /metrics. Runs until interrupted.

Examples:
  kanban serve
  kanban serve --listen :9000 --origin http://localhost:5173
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runServe),
	}

	cmd.Flags().StringP("listen", "l", "", "Listen address (defaults to server.listen_addr)")
	cmd.Flags().StringSlice("origin", nil, "Allowed CORS origin, repeatable (defaults to any)")
	return cmd
}

func runServe(env *handler.Env) error {
	ctx, cancel := signal.NotifyContext(env.Ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	cfg := server.Config{
		ListenAddr:     env.CLI.Config.Server.ListenAddr,
		AllowedOrigins: env.CLI.Config.Server.AllowedOrigins,
	}
	if addr := env.Flags.GetString("listen"); addr != "" {
		cfg.ListenAddr = addr
	}
	if origins := env.Flags.GetStringSlice("origin"); len(origins) > 0 {
		cfg.AllowedOrigins = origins
	}

	slog.Info("kanban server starting", "addr", cfg.ListenAddr, "pid", os.Getpid())
	if err := server.New(cfg, env.CLI.App.Bus).Start(ctx); err != nil {
		return err
	}
	slog.Info("kanban server shut down gracefully")
	return nil
}
