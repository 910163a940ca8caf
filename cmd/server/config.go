package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/forecast-api/internal/config"
)

// loadAppConfig loads the application configuration from environment
// variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig records the non-secret parts of cfg.
func logConfig(cfg *config.Config) {
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"rate_limit_backend", cfg.RateLimit.Backend,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"trust_proxy_headers", cfg.Server.TrustProxyHeaders)

	// Presence only; secret values never reach the log.
	slog.Debug("Auth configuration",
		"jwt_secret_present", cfg.Auth.JWTSecret != "",
		"api_key_present", cfg.APIKey.Secret != "",
		"role_only_login", cfg.Auth.AllowRoleOnlyLogin,
		"admin_registration", cfg.Auth.AllowAdminRegistration)
}
