package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/service"
	"github.com/phrazzld/forecast-api/internal/service/auth"
	"github.com/phrazzld/forecast-api/internal/store"
)

// Client-facing authentication messages.
const (
	RegisteredMessage         = "User registered successfully."
	UsernameTakenMessage      = "Username is already taken."
	InvalidCredentialsMessage = "Invalid username or password."
	AdminRegistrationDisabled = "Admin registration is disabled."
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrRoleOnlyLoginDisabled),
		errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrBadSignature),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidClaims):
		return http.StatusUnauthorized

	// Registration conflicts are reported as 400, matching the public API.
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrAdminRegistrationDisabled):
		return http.StatusForbidden

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrNoSensitiveField):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		return UsernameTakenMessage

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrRoleOnlyLoginDisabled):
		return InvalidCredentialsMessage

	case errors.Is(err, service.ErrAdminRegistrationDisabled):
		return AdminRegistrationDisabled

	case errors.Is(err, service.ErrNoSensitiveField):
		return "No sensitive data stored"

	case errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrBadSignature),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidClaims):
		return "Invalid token"

	// Domain validation messages describe only the caller's own input.
	case errors.Is(err, domain.ErrValidation):
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes struct details from validator errors and
// returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example: "Key: 'RegisterRequest.Username' Error:Field validation for 'Username' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "datetime":
		return "expected YYYY-MM-DD"
	case "gte", "lte":
		return "out of range"
	default:
		return "validation failed"
	}
}
