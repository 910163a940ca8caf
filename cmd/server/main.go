// Package main implements the entry point for the forecast API server,
// which serves weather forecasts behind API-key, rate-limit and JWT
// gatekeeping.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a database migration command (up, down, status, version, reset) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("forecast-api: %v", err)
	}
}

// run loads configuration and either executes a migration command or
// serves HTTP until SIGINT/SIGTERM.
func run(migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg, migrateCmd, logger)
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	slog.Info("Forecast API starting", "port", cfg.Server.Port)
	return app.Run(ctx)
}
