package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/golia-dev/golia/internal/config"
	"github.com/golia-dev/golia/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the transpile server",
		Long: `Start the HTTP server exposing the transpiler.

Endpoints:
  POST /derender   convert raw HTML to builder code
  GET  /ws         live conversion over WebSocket
  GET  /healthz    liveness probe
  GET  /metrics    Prometheus metrics

Examples:
  golia serve
  golia serve --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, verbose)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from golia.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runServe(addr string, verbose bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Addr()
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv := server.New(server.Config{
		Addr:   addr,
		Logger: logger,
	})
	info("serving on %s", addr)
	return srv.ListenAndServe()
}
