package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"employeeform/internal/app/server"
	"employeeform/internal/platform/config"
	"employeeform/internal/platform/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web form and JSON API",
	Example: `  # Start with defaults on :8080
  employeeform serve

  # Start with a config file
  employeeform serve --config ./configs/config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		zap.ReplaceGlobals(log)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
