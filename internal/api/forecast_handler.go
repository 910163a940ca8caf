package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/service"
)

// errBoom is the failure behind the /weatherforecast/boom route.
var errBoom = errors.New("forecast provider unavailable")

// ForecastHandler handles the forecast routes.
type ForecastHandler struct {
	forecasts      service.ForecastService
	supportContact string
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(forecasts service.ForecastService, supportContact string) *ForecastHandler {
	return &ForecastHandler{
		forecasts:      forecasts,
		supportContact: supportContact,
	}
}

// List handles GET /weatherforecast.
func (h *ForecastHandler) List(w http.ResponseWriter, r *http.Request) {
	forecasts, err := h.forecasts.List(r.Context())
	if err != nil {
		handleServiceError(w, r, err, h.supportContact)
		return
	}

	if forecasts == nil {
		forecasts = []domain.Forecast{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, forecasts)
}

// Create handles POST /admin/weatherforecast.
func (h *ForecastHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateForecastRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	date, err := req.ParsedDate()
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Date: expected YYYY-MM-DD")
		return
	}

	forecast, err := h.forecasts.Create(r.Context(), service.CreateForecastInput{
		Date:         date,
		TemperatureF: req.TemperatureF,
		Summary:      req.Summary,
	})
	if err != nil {
		handleServiceError(w, r, err, h.supportContact)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, forecast)
}

// Boom handles GET /weatherforecast/boom. It always fails, exercising the
// generic 500 path.
func (h *ForecastHandler) Boom(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithInternalError(w, r, h.supportContact, errBoom)
}
