package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/store"
)

// CreateForecastInput carries the fields of a new forecast.
type CreateForecastInput struct {
	Date         time.Time
	TemperatureF int
	Summary      string
}

// ForecastService reads and writes forecasts.
type ForecastService interface {
	List(ctx context.Context) ([]domain.Forecast, error)

	// Create validates and stores a forecast. Validation failures wrap
	// domain.ErrValidation.
	Create(ctx context.Context, in CreateForecastInput) (*domain.Forecast, error)
}

type forecastService struct {
	forecasts store.ForecastStore
	logger    *slog.Logger
}

// NewForecastService creates a ForecastService.
func NewForecastService(forecasts store.ForecastStore, logger *slog.Logger) ForecastService {
	if logger == nil {
		logger = slog.Default()
	}
	return &forecastService{
		forecasts: forecasts,
		logger:    logger.With("component", "forecast_service"),
	}
}

func (s *forecastService) List(ctx context.Context) ([]domain.Forecast, error) {
	forecasts, err := s.forecasts.List(ctx)
	if err != nil {
		s.logger.Error("failed to list forecasts", "error", err)
		return nil, NewServiceError("forecast", "list", err)
	}
	return forecasts, nil
}

func (s *forecastService) Create(ctx context.Context, in CreateForecastInput) (*domain.Forecast, error) {
	f, err := domain.NewForecast(in.Date, in.TemperatureF, in.Summary)
	if err != nil {
		return nil, err
	}

	if err := s.forecasts.Create(ctx, f); err != nil {
		s.logger.Error("failed to save forecast", "error", err)
		return nil, NewServiceError("forecast", "create", err)
	}

	s.logger.Info("forecast created", "forecast_id", f.ID, "date", f.Date)
	return f, nil
}
