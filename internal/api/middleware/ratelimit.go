package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/ratelimit"
)

// RateLimitedMessage is the body of every 429 response.
const RateLimitedMessage = "Rate limit exceeded. Try again later."

// KeyFunc extracts the client identity from a request.
type KeyFunc func(*http.Request) string

// ClientIP returns the host part of r.RemoteAddr, or the raw value when it
// has no port. Behind a trusted proxy, chi's RealIP middleware must run
// first so RemoteAddr holds the forwarded address.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit admits requests through limiter keyed by keyFn. Denied
// requests get 429; a limiter failure gets the generic 500.
func RateLimit(
	limiter ratelimit.Limiter,
	keyFn KeyFunc,
	now func() time.Time,
	supportContact string,
) func(http.Handler) http.Handler {
	if keyFn == nil {
		keyFn = ClientIP
	}
	if now == nil {
		now = time.Now
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFn(r)

			admitted, err := limiter.Admit(r.Context(), key, now())
			if err != nil {
				shared.RespondWithInternalError(w, r, supportContact, err)
				return
			}
			if !admitted {
				shared.LogError(r, http.StatusTooManyRequests, RateLimitedMessage, nil)
				shared.RespondWithText(w, r, http.StatusTooManyRequests, RateLimitedMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
