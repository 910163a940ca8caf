package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/platform/logger"
	"github.com/phrazzld/forecast-api/internal/store"
)

// PostgresForecastStore implements store.ForecastStore on PostgreSQL.
type PostgresForecastStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresForecastStore creates a PostgresForecastStore.
func NewPostgresForecastStore(db store.DBTX, logger *slog.Logger) *PostgresForecastStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresForecastStore{
		db:     db,
		logger: logger.With(slog.String("component", "forecast_store")),
	}
}

var _ store.ForecastStore = (*PostgresForecastStore)(nil)

// Create implements store.ForecastStore.Create
func (s *PostgresForecastStore) Create(ctx context.Context, f *domain.Forecast) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := f.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO forecasts (date, temperature_c, temperature_f, summary, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, f.Date, f.TemperatureC, f.TemperatureF, f.Summary, f.CreatedAt).
		Scan(&f.ID)
	if err != nil {
		log.Error("failed to create forecast", slog.String("error", err.Error()))
		return store.NewStoreError("forecast", "create", "insert failed", MapError(err))
	}

	log.Debug("forecast created", slog.Int64("forecast_id", f.ID))
	return nil
}

// List implements store.ForecastStore.List
func (s *PostgresForecastStore) List(ctx context.Context) ([]domain.Forecast, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, date, temperature_c, temperature_f, summary, created_at
		FROM forecasts
		ORDER BY date, id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list forecasts", slog.String("error", err.Error()))
		return nil, store.NewStoreError("forecast", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	forecasts := make([]domain.Forecast, 0)
	for rows.Next() {
		var f domain.Forecast
		if err := rows.Scan(&f.ID, &f.Date, &f.TemperatureC, &f.TemperatureF, &f.Summary, &f.CreatedAt); err != nil {
			return nil, store.NewStoreError("forecast", "list", "scan failed", err)
		}
		f.Date = f.Date.UTC()
		forecasts = append(forecasts, f)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("forecast", "list", "row iteration failed", err)
	}

	return forecasts, nil
}
