package api

import (
	"net/http"

	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/platform/logger"
)

// decodeAndValidate decodes the JSON body into v and validates it. On
// failure it writes a 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		logger.FromContext(r.Context()).Debug("invalid request body", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}

	return true
}

// handleServiceError writes the response for a service failure. Unexpected
// errors get the generic 500 body; everything else gets its mapped status
// and safe message.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, supportContact string) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		shared.RespondWithInternalError(w, r, supportContact, err)
		return
	}

	message := GetSafeErrorMessage(err)
	shared.LogError(r, status, message, err)
	shared.RespondWithError(w, r, status, message)
}
