package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/forecast-api/internal/api/shared"
	"github.com/phrazzld/forecast-api/internal/service"
)

// AuthHandler handles the registration and token endpoints.
type AuthHandler struct {
	auth           service.AuthService
	supportContact string
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService, supportContact string) *AuthHandler {
	return &AuthHandler{
		auth:           authService,
		supportContact: supportContact,
	}
}

// Register handles POST /authentication/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	err := h.auth.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
		SSN:      req.SSN,
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			shared.RespondWithInternalError(w, r, h.supportContact, err)
			return
		}
		message := GetSafeErrorMessage(err)
		shared.LogError(r, status, message, err)
		shared.RespondWithText(w, r, status, message)
		return
	}

	shared.RespondWithText(w, r, http.StatusOK, RegisteredMessage)
}

// Token handles POST /authentication/token. Every credential failure gets
// the same 401 message.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	var (
		result *service.LoginResult
		err    error
	)
	if req.roleOnly() {
		result, err = h.auth.IssueForRole(r.Context(), req.Role)
	} else {
		result, err = h.auth.Login(r.Context(), req.Username, req.Password)
	}

	if err != nil {
		if MapErrorToStatusCode(err) == http.StatusInternalServerError {
			shared.RespondWithInternalError(w, r, h.supportContact, err)
			return
		}
		// Unknown roles are folded into the credential failure.
		shared.LogError(r, http.StatusUnauthorized, InvalidCredentialsMessage, err)
		shared.RespondWithText(w, r, http.StatusUnauthorized, InvalidCredentialsMessage)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
