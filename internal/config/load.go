package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. FORECAST_AUTH_JWT_SECRET for auth.jwt_secret.
const EnvPrefix = "FORECAST"

// configFileEnv names an explicit config file path.
const configFileEnv = "FORECAST_CONFIG_FILE"

// keys without defaults still need explicit env bindings for Unmarshal to see them.
var boundKeys = []string{
	"database.url",
	"auth.jwt_secret",
	"auth.issuer",
	"auth.audience",
	"auth.field_encryption_key",
	"api_key.secret",
	"rate_limit.redis_url",
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range boundKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.trust_proxy_headers", false)
	v.SetDefault("server.support_contact", "support@example.com")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.driver", "memory")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("auth.token_lifetime_minutes", 30)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.allow_role_only_login", false)
	v.SetDefault("auth.allow_admin_registration", false)

	v.SetDefault("rate_limit.max_requests", 10)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("rate_limit.backend", "memory")
	v.SetDefault("rate_limit.sweep_interval", time.Minute)
}
