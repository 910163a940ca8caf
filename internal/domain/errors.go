package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Specific validation errors wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidRole is returned for a role outside the closed role set.
	ErrInvalidRole = fmt.Errorf("%w: invalid role", ErrValidation)

	// ErrEmptyUsername is returned when a user has no username.
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrValidation)

	// ErrUsernameTooLong is returned when a username exceeds MaxUsernameLength.
	ErrUsernameTooLong = fmt.Errorf("%w: username is too long", ErrValidation)

	// ErrPasswordTooLong is returned when a password exceeds MaxPasswordBytes.
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most 72 bytes", ErrValidation)

	// ErrEmptyHashedPassword is returned when a user is built without a hash.
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)

	// ErrInvalidSummary is returned when a forecast summary is out of bounds.
	ErrInvalidSummary = fmt.Errorf("%w: summary must be between 3 and 20 characters", ErrValidation)

	// ErrInconsistentSummary is returned when the summary contradicts the temperature.
	ErrInconsistentSummary = fmt.Errorf("%w: the temperature does not match the summary description", ErrValidation)

	// ErrMissingDate is returned when a forecast has no date.
	ErrMissingDate = fmt.Errorf("%w: date is required", ErrValidation)
)
