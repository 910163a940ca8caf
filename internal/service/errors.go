package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the services. Callers check them with errors.Is.
var (
	// ErrUsernameTaken indicates registration for a username that already
	// exists. API layer should map this to HTTP 400 Bad Request.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrInvalidCredentials indicates an unknown username or a wrong password.
	// The two cases are deliberately indistinguishable.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrRoleOnlyLoginDisabled indicates a role-only token request while the
	// feature is switched off. API layer should map this to HTTP 401.
	ErrRoleOnlyLoginDisabled = errors.New("role-only login is disabled")

	// ErrAdminRegistrationDisabled indicates a self-registration requesting
	// the admin role while that is switched off. API layer should map this
	// to HTTP 403 Forbidden.
	ErrAdminRegistrationDisabled = errors.New("admin self-registration is disabled")

	// ErrNoSensitiveField indicates the user has no stored SSN.
	ErrNoSensitiveField = errors.New("no sensitive field stored for user")
)

// ServiceError wraps an unexpected failure with the service and operation
// it happened in.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s operation failed: %v", e.Service, e.Operation, e.Err)
	}
	return fmt.Sprintf("%s service %s operation failed", e.Service, e.Operation)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a ServiceError.
func NewServiceError(service, operation string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Err:       err,
	}
}
