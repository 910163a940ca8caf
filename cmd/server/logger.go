package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/forecast-api/internal/config"
	"github.com/phrazzld/forecast-api/internal/platform/logger"
)

// setupAppLogger configures the application logger from config settings
// and logs the loaded configuration through it.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	logConfig(cfg)
	return l, nil
}
