package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/modal/pkg/middleware"
	"github.com/vango-dev/modal/pkg/server"
)

func serveCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the modal showcase server",
		Long: `Run the interactive showcase server.

Settings come from flags, VANGO_MODAL_* environment variables and an
optional vango-modal.{yaml,toml,json} config file, in that order of
precedence.

Examples:
  vango-modal serve
  vango-modal serve --addr :3000 --size lg --position bottom
  VANGO_MODAL_LOG_LEVEL=debug vango-modal serve --config ./vango-modal.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(newViper(cfgFile), cmd.Flags(), cfgFile != "")
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	defaults := server.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVarP(&cfgFile, "config", "c", "", "Config file (default searches ., $HOME and /etc/vango-modal/)")
	flags.String("addr", ":8080", "Address to listen on")
	flags.String("title", "Modal showcase", "Page title")
	flags.String("size", "extra-large", "Initial modal size (small, large, extra-large)")
	flags.String("position", "center", "Initial modal position (top, center, bottom)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Bool("allow-all-origins", false, "Accept WebSocket upgrades from any origin")
	flags.Duration("shutdown-timeout", defaults.ShutdownTimeout, "Maximum time to wait for connections to drain on shutdown")
	flags.Int64("max-message-size", defaults.MaxMessageSize, "Maximum size in bytes of an incoming WebSocket message")

	return cmd
}

func runServe(ctx context.Context, cfg *server.Config) error {
	cfg.Metrics = middleware.NewMetrics()
	cfg.Tracer = middleware.NewTracer()

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	printBanner()
	fmt.Printf("  serving on %s\n\n", cfg.Address)
	return srv.Run(ctx)
}
