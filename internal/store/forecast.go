package store

import (
	"context"

	"github.com/phrazzld/forecast-api/internal/domain"
)

// ForecastStore persists forecasts.
type ForecastStore interface {
	// Create saves f and assigns its ID.
	Create(ctx context.Context, f *domain.Forecast) error

	// List returns all forecasts ordered by date, then ID.
	List(ctx context.Context) ([]domain.Forecast, error)
}
