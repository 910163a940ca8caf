package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/forecast-api/internal/config"
	"github.com/phrazzld/forecast-api/internal/platform/postgres"
)

// handleMigrations runs a single migration command against the configured
// database. It's called from main() when the -migrate flag is set.
func handleMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if cfg.Database.Driver != "postgres" {
		return fmt.Errorf("migrations require database.driver=postgres, got %q", cfg.Database.Driver)
	}

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("Error closing database connection", "error", closeErr)
		}
	}()

	logger.Info("Executing migrations", "command", command)
	return postgres.Migrate(ctx, db, command, logger)
}
