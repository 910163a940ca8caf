package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/forecast-api/internal/apikey"
	"github.com/phrazzld/forecast-api/internal/config"
	"github.com/phrazzld/forecast-api/internal/platform/memory"
	"github.com/phrazzld/forecast-api/internal/platform/postgres"
	"github.com/phrazzld/forecast-api/internal/ratelimit"
	"github.com/phrazzld/forecast-api/internal/service"
	"github.com/phrazzld/forecast-api/internal/service/auth"
	"github.com/phrazzld/forecast-api/internal/store"
	"github.com/redis/go-redis/v9"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Optional backends; nil when the memory drivers are configured.
	db    *sql.DB
	redis *redis.Client

	// Stores
	userStore     store.UserStore
	forecastStore store.ForecastStore

	// Gatekeeping
	gate    *apikey.Gate
	limiter ratelimit.Limiter
	tokens  auth.TokenService

	// Services
	authService     service.AuthService
	forecastService service.ForecastService

	// now is the clock handed to the rate limiter.
	now func() time.Time

	stopSweeper context.CancelFunc
}

// newApplication creates a new application instance with all dependencies
// initialized. Background work started here stops in cleanup.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		now:    time.Now,
	}

	if err := app.setupStores(ctx); err != nil {
		app.cleanup()
		return nil, err
	}

	if err := app.setupGatekeeping(ctx); err != nil {
		app.cleanup()
		return nil, err
	}

	if err := app.setupServices(); err != nil {
		app.cleanup()
		return nil, err
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

func (app *application) setupStores(ctx context.Context) error {
	switch app.config.Database.Driver {
	case "postgres":
		db, err := setupAppDatabase(ctx, app.config.Database, app.logger)
		if err != nil {
			return err
		}
		app.db = db

		if app.config.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, db, postgres.MigrateUp, app.logger); err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}
		}

		app.userStore = postgres.NewPostgresUserStore(db, app.logger)
		app.forecastStore = postgres.NewPostgresForecastStore(db, app.logger)
	default:
		app.logger.Warn("using in-memory stores; data is lost on restart")
		app.userStore = memory.NewUserStore(app.logger)
		app.forecastStore = memory.NewForecastStore()
	}
	return nil
}

func (app *application) setupGatekeeping(ctx context.Context) error {
	var err error

	app.gate, err = apikey.NewGate(app.config.APIKey.Secret)
	if err != nil {
		return fmt.Errorf("failed to create api key gate: %w", err)
	}

	rl := app.config.RateLimit
	switch rl.Backend {
	case "redis":
		app.redis, err = ratelimit.NewRedisClient(ctx, rl.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.limiter, err = ratelimit.NewRedisSlidingWindow(app.redis, rl.MaxRequests, rl.Window)
		if err != nil {
			return fmt.Errorf("failed to create rate limiter: %w", err)
		}
	default:
		window, err := ratelimit.NewSlidingWindow(rl.MaxRequests, rl.Window)
		if err != nil {
			return fmt.Errorf("failed to create rate limiter: %w", err)
		}

		sweepCtx, cancel := context.WithCancel(context.Background())
		app.stopSweeper = cancel
		go window.Run(sweepCtx, rl.SweepInterval, app.now)

		app.limiter = window
	}
	app.logger.Info("Rate limiter initialized",
		"backend", rl.Backend,
		"max_requests", rl.MaxRequests,
		"window", rl.Window)

	app.tokens, err = auth.NewTokenService(app.config.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	app.logger.Info("JWT token service initialized",
		"token_lifetime_minutes", app.config.Auth.TokenLifetimeMinutes)

	return nil
}

func (app *application) setupServices() error {
	cipher, err := auth.NewAEADCipher(app.config.Auth.FieldEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize field cipher: %w", err)
	}

	app.authService, err = service.NewAuthService(
		app.userStore,
		auth.NewBcryptHasher(app.config.Auth.BcryptCost),
		cipher,
		app.tokens,
		app.logger,
		service.AuthServiceOptions{
			AllowRoleOnlyLogin:     app.config.Auth.AllowRoleOnlyLogin,
			AllowAdminRegistration: app.config.Auth.AllowAdminRegistration,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create auth service: %w", err)
	}
	if app.config.Auth.AllowRoleOnlyLogin {
		app.logger.Warn("role-only login is enabled; do not use in production")
	}
	if app.config.Auth.AllowAdminRegistration {
		app.logger.Warn("admin self-registration is enabled")
	}

	app.forecastService = service.NewForecastService(app.forecastStore, app.logger)
	return nil
}

// Run serves HTTP until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources. It is safe
// to call on a partially initialized application.
func (app *application) cleanup() {
	if app.stopSweeper != nil {
		app.stopSweeper()
	}

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("Error closing redis connection", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
