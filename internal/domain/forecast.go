package domain

import "time"

// Forecast is a single day's weather forecast.
type Forecast struct {
	ID           int64     `json:"id"`
	Date         time.Time `json:"date"`
	TemperatureC int       `json:"temperature_c"`
	TemperatureF int       `json:"temperature_f"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewForecast builds a Forecast from a Fahrenheit reading, deriving the
// Celsius value. The date is truncated to midnight UTC.
func NewForecast(date time.Time, temperatureF int, summary string) (*Forecast, error) {
	f := &Forecast{
		Date:         truncateToDay(date),
		TemperatureF: temperatureF,
		TemperatureC: FahrenheitToCelsius(temperatureF),
		Summary:      summary,
		CreatedAt:    time.Now().UTC(),
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the forecast's own fields.
func (f *Forecast) Validate() error {
	if f.Date.IsZero() {
		return ErrMissingDate
	}
	if n := len(f.Summary); n < 3 || n > 20 {
		return ErrInvalidSummary
	}
	if (f.Summary == "Hot" && f.TemperatureF < 90) || (f.Summary == "Cold" && f.TemperatureF > 30) {
		return ErrInconsistentSummary
	}
	return nil
}

// FahrenheitToCelsius converts f to whole degrees Celsius, truncating.
func FahrenheitToCelsius(f int) int {
	return int(float64(f-32) * 5.0 / 9.0)
}

func truncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
