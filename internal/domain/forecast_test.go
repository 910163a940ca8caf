package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForecast(t *testing.T) {
	date := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	f, err := NewForecast(date, 95, "Hot")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), f.Date)
	assert.Equal(t, 95, f.TemperatureF)
	assert.Equal(t, 35, f.TemperatureC)
	assert.Equal(t, "Hot", f.Summary)
}

func TestForecastValidate(t *testing.T) {
	date := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		tempF   int
		summary string
		date    time.Time
		wantErr error
	}{
		{name: "mild", tempF: 60, summary: "Mild", date: date},
		{name: "missing date", tempF: 60, summary: "Mild", wantErr: ErrMissingDate},
		{name: "summary too short", tempF: 60, summary: "ok", date: date, wantErr: ErrInvalidSummary},
		{name: "summary too long", tempF: 60, summary: "an unusually long summary", date: date, wantErr: ErrInvalidSummary},
		{name: "hot but cool", tempF: 80, summary: "Hot", date: date, wantErr: ErrInconsistentSummary},
		{name: "cold but warm", tempF: 45, summary: "Cold", date: date, wantErr: ErrInconsistentSummary},
		{name: "cold and freezing", tempF: 20, summary: "Cold", date: date},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewForecast(tt.date, tt.tempF, tt.summary)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestFahrenheitToCelsius(t *testing.T) {
	assert.Equal(t, 0, FahrenheitToCelsius(32))
	assert.Equal(t, 100, FahrenheitToCelsius(212))
	assert.Equal(t, -40, FahrenheitToCelsius(-40))
}
