package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/mocks"
	"github.com/phrazzld/forecast-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastServiceCreateAndList(t *testing.T) {
	t.Parallel()
	forecasts := &mocks.MockForecastStore{}
	svc := service.NewForecastService(forecasts, discardLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateForecastInput{
		Date:         time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		TemperatureF: 95,
		Summary:      "Hot",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, 35, created.TemperatureC)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Hot", list[0].Summary)
}

func TestForecastServiceCreateValidation(t *testing.T) {
	t.Parallel()
	forecasts := &mocks.MockForecastStore{}
	svc := service.NewForecastService(forecasts, discardLogger())

	_, err := svc.Create(context.Background(), service.CreateForecastInput{
		Date:         time.Now(),
		TemperatureF: 50,
		Summary:      "Hot",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, forecasts.Forecasts)
}

func TestForecastServiceStoreFailure(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	forecasts := &mocks.MockForecastStore{
		ListFn: func(context.Context) ([]domain.Forecast, error) { return nil, boom },
	}
	svc := service.NewForecastService(forecasts, discardLogger())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, boom)

	var svcErr *service.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "forecast", svcErr.Service)
}
