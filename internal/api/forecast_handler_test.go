package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/mocks"
	"github.com/phrazzld/forecast-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newForecastHandler(store *mocks.MockForecastStore) *ForecastHandler {
	return NewForecastHandler(service.NewForecastService(store, nil), testSupportContact)
}

func TestForecastList(t *testing.T) {
	t.Parallel()

	t.Run("empty store returns empty array", func(t *testing.T) {
		h := newForecastHandler(&mocks.MockForecastStore{})
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/weatherforecast", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("returns stored forecasts", func(t *testing.T) {
		day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		store := &mocks.MockForecastStore{Forecasts: []domain.Forecast{
			{ID: 1, Date: day, TemperatureF: 95, TemperatureC: 35, Summary: "Hot"},
		}}
		h := newForecastHandler(store)
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/weatherforecast", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Forecast
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Hot", got[0].Summary)
		assert.Equal(t, 35, got[0].TemperatureC)
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		store := &mocks.MockForecastStore{
			ListFn: func(ctx context.Context) ([]domain.Forecast, error) {
				return nil, errors.New("relation \"forecasts\" does not exist")
			},
		}
		h := newForecastHandler(store)
		rec := httptest.NewRecorder()
		h.List(rec, httptest.NewRequest(http.MethodGet, "/weatherforecast", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "relation")
	})
}

func TestForecastCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    interface{}
		wantStatus int
	}{
		{
			name:       "valid forecast",
			payload:    map[string]interface{}{"date": "2024-07-04", "temperature_f": 95, "summary": "Hot"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "summary contradicts temperature",
			payload:    map[string]interface{}{"date": "2024-07-04", "temperature_f": 50, "summary": "Hot"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "summary too short",
			payload:    map[string]interface{}{"date": "2024-07-04", "temperature_f": 50, "summary": "ok"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad date",
			payload:    map[string]interface{}{"date": "07/04/2024", "temperature_f": 50, "summary": "Mild"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing date",
			payload:    map[string]interface{}{"temperature_f": 50, "summary": "Mild"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := &mocks.MockForecastStore{}
			h := newForecastHandler(store)

			rec := postJSON(t, h.Create, "/admin/weatherforecast", tt.payload)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var got domain.Forecast
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, int64(1), got.ID)
				assert.Equal(t, 35, got.TemperatureC)
				assert.Len(t, store.Forecasts, 1)
			} else {
				assert.Empty(t, store.Forecasts)
			}
		})
	}
}

func TestForecastBoom(t *testing.T) {
	t.Parallel()
	h := newForecastHandler(&mocks.MockForecastStore{})

	rec := httptest.NewRecorder()
	h.Boom(rec, httptest.NewRequest(http.MethodGet, "/weatherforecast/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body shared.InternalErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, shared.InternalErrorMessage, body.Message)
	assert.Equal(t, testSupportContact, body.SupportContact)
}
