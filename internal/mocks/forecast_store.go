package mocks

import (
	"context"

	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/store"
)

// MockForecastStore implements store.ForecastStore for testing
type MockForecastStore struct {
	CreateFn func(ctx context.Context, f *domain.Forecast) error
	ListFn   func(ctx context.Context) ([]domain.Forecast, error)

	Forecasts []domain.Forecast
}

var _ store.ForecastStore = (*MockForecastStore)(nil)

// Create implements the ForecastStore interface
func (m *MockForecastStore) Create(ctx context.Context, f *domain.Forecast) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	f.ID = int64(len(m.Forecasts) + 1)
	m.Forecasts = append(m.Forecasts, *f)
	return nil
}

// List implements the ForecastStore interface
func (m *MockForecastStore) List(ctx context.Context) ([]domain.Forecast, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Forecasts, nil
}
