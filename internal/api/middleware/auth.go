package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/service/auth"
)

// Client-facing authentication messages. Verification failures share one
// message so clients cannot probe which check failed.
const (
	MissingTokenMessage = "Authorization header required"
	BadFormatMessage    = "Invalid authorization format"
	InvalidTokenMessage = "Invalid or expired token"
	ForbiddenMessage    = "Insufficient role"
)

// AuthMiddleware provides token authentication for routes.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the bearer token in the Authorization header and
// stores its claims in the request context. Every failure is 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MissingTokenMessage)
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
			shared.RespondWithError(w, r, http.StatusUnauthorized, BadFormatMessage)
			return
		}

		claims, err := m.tokens.Verify(r.Context(), token)
		if err != nil {
			shared.LogError(r, http.StatusUnauthorized, InvalidTokenMessage, err)
			shared.RespondWithError(w, r, http.StatusUnauthorized, InvalidTokenMessage)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithClaims(r.Context(), claims)))
	})
}

// RequireRole rejects with 403 any request whose verified claims carry none
// of roles. It must run after Authenticate; without claims it answers 401.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := shared.GetClaims(r.Context())
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, MissingTokenMessage)
				return
			}

			if !auth.Authorize(claims, roles...) {
				shared.LogError(r, http.StatusForbidden, ForbiddenMessage, nil)
				shared.RespondWithError(w, r, http.StatusForbidden, ForbiddenMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
