package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/store"
)

// ForecastStore is a slice-backed store.ForecastStore.
type ForecastStore struct {
	mu        sync.RWMutex
	nextID    int64
	forecasts []domain.Forecast
}

var _ store.ForecastStore = (*ForecastStore)(nil)

// NewForecastStore creates an empty ForecastStore.
func NewForecastStore() *ForecastStore {
	return &ForecastStore{nextID: 1}
}

// Create implements store.ForecastStore.
func (s *ForecastStore) Create(_ context.Context, f *domain.Forecast) error {
	if err := f.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.nextID
	s.nextID++
	s.forecasts = append(s.forecasts, *f)
	return nil
}

// List implements store.ForecastStore.
func (s *ForecastStore) List(_ context.Context) ([]domain.Forecast, error) {
	s.mu.RLock()
	out := make([]domain.Forecast, len(s.forecasts))
	copy(out, s.forecasts)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
