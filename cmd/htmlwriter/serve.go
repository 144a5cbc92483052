package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wongyip/php-html-writer/internal/playground"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local playground server",
		Long: `Start a local playground for trying selector expressions.

Endpoints:
  GET  /         form page
  POST /render   render a submitted expression
  GET  /ws       live preview over WebSocket
  GET  /metrics  Prometheus metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			server := playground.New(playground.Config{
				Addr:   addr,
				Logger: logger,
			})
			return server.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "l", ":8780", "Listen address")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	return cmd
}
