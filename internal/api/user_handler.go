package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/platform/logger"
	"github.com/phrazzld/forecast-api/internal/service"
)

// UserHandler handles the admin user routes.
type UserHandler struct {
	auth           service.AuthService
	supportContact string
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService service.AuthService, supportContact string) *UserHandler {
	return &UserHandler{
		auth:           authService,
		supportContact: supportContact,
	}
}

// RevealSSN handles GET /admin/users/{username}/social-security-number.
// Every disclosure is logged with the requesting subject.
func (h *UserHandler) RevealSSN(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	if username == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Username: required field")
		return
	}

	ssn, err := h.auth.RevealSSN(r.Context(), username)
	if err != nil {
		handleServiceError(w, r, err, h.supportContact)
		return
	}

	requester := ""
	if claims, ok := shared.GetClaims(r.Context()); ok {
		requester = claims.Subject
	}
	logger.FromContext(r.Context()).Warn("sensitive field disclosed",
		"field", "social_security_number",
		"username", username,
		"requested_by", requester)

	shared.RespondWithJSON(w, r, http.StatusOK, SSNResponse{Username: username, SSN: ssn})
}
