package api

import (
	"time"
)

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin user"`
	// SSN is optional and stored encrypted.
	SSN string `json:"social_security_number" validate:"omitempty,max=64"`
}

// TokenRequest defines the payload for the token endpoint. Either
// Username and Password are set, or (when role-only login is enabled) only
// Role.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// roleOnly reports whether the request uses the role-only variant.
func (r TokenRequest) roleOnly() bool {
	return r.Username == "" && r.Password == "" && r.Role != ""
}

// TokenResponse defines the successful response of the token endpoint.
type TokenResponse struct {
	// Token is the signed JWT to send as "Authorization: Bearer <token>"
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// CreateForecastRequest defines the payload for creating a forecast.
type CreateForecastRequest struct {
	Date         string `json:"date"          validate:"required,datetime=2006-01-02"`
	TemperatureF int    `json:"temperature_f" validate:"gte=-200,lte=200"`
	Summary      string `json:"summary"       validate:"required,min=3,max=20"`
}

// ParsedDate returns Date as a UTC time. Call only after validation.
func (r CreateForecastRequest) ParsedDate() (time.Time, error) {
	return time.Parse(time.DateOnly, r.Date)
}

// SSNResponse is the body of GET /admin/users/{username}/social-security-number.
type SSNResponse struct {
	Username string `json:"username"`
	SSN      string `json:"social_security_number"`
}
