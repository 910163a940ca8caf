package middleware

import (
	"net/http"

	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/apikey"
)

// Client-facing gate messages.
const (
	MissingAPIKeyMessage = "API Key was not provided."
	InvalidAPIKeyMessage = "Unauthorized client."
)

// APIKey rejects requests whose X-Api-Key header is absent (401) or does not
// match the configured key (403).
func APIKey(gate *apikey.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			values := r.Header.Values(apikey.HeaderName)
			presented := ""
			if len(values) > 0 {
				presented = values[0]
			}

			switch outcome := gate.Check(presented, len(values) > 0); outcome {
			case apikey.Allowed:
				next.ServeHTTP(w, r)
			case apikey.MissingKey:
				shared.LogError(r, http.StatusUnauthorized, MissingAPIKeyMessage, nil)
				shared.RespondWithText(w, r, http.StatusUnauthorized, MissingAPIKeyMessage)
			default:
				shared.LogError(r, http.StatusForbidden, InvalidAPIKeyMessage, nil)
				shared.RespondWithText(w, r, http.StatusForbidden, InvalidAPIKeyMessage)
			}
		})
	}
}
