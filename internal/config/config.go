package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	APIKey    APIKeyConfig    `mapstructure:"api_key"    validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// TrustProxyHeaders makes the client identity come from X-Forwarded-For /
	// X-Real-IP instead of the socket address. Only enable behind a proxy.
	TrustProxyHeaders bool `mapstructure:"trust_proxy_headers"`

	// SupportContact is included in generic 500 responses.
	SupportContact string `mapstructure:"support_contact" validate:"required"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the credential and forecast storage backend.
	Driver       string `mapstructure:"driver"         validate:"required,oneof=memory postgres"`
	URL          string `mapstructure:"url"            validate:"required_if=Driver postgres"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	Issuer               string `mapstructure:"issuer"                 validate:"required"`
	Audience             string `mapstructure:"audience"               validate:"required"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=0,lte=31"`
	FieldEncryptionKey   string `mapstructure:"field_encryption_key"   validate:"required,min=32"`

	// AllowRoleOnlyLogin enables POST /authentication/token with a bare
	// {"role": ...} body. Development only.
	AllowRoleOnlyLogin bool `mapstructure:"allow_role_only_login"`

	// AllowAdminRegistration lets POST /authentication/register create
	// admin users. Off by default: any holder of the API key could
	// otherwise grant themselves admin.
	AllowAdminRegistration bool `mapstructure:"allow_admin_registration"`
}

// APIKeyConfig holds the pre-shared key every client must present.
type APIKeyConfig struct {
	Secret string `mapstructure:"secret" validate:"required"`
}

// RateLimitConfig configures per-client admission control.
type RateLimitConfig struct {
	MaxRequests   int           `mapstructure:"max_requests"   validate:"gte=0"`
	Window        time.Duration `mapstructure:"window"         validate:"gt=0"`
	Backend       string        `mapstructure:"backend"        validate:"required,oneof=memory redis"`
	RedisURL      string        `mapstructure:"redis_url"      validate:"required_if=Backend redis"`
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gt=0"`
}
