package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{ErrUsernameTaken, ErrInvalidCredentials, ErrRoleOnlyLoginDisabled, ErrNoSensitiveField}
	for i, a := range sentinels {
		for j, b := range sentinels {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}

func TestServiceError(t *testing.T) {
	cause := errors.New("database connection failed")

	err := NewServiceError("auth", "register", cause)
	assert.Equal(t, "auth service register operation failed: database connection failed", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewServiceError("forecast", "list", nil)
	assert.Equal(t, "forecast service list operation failed", bare.Error())
	assert.NoError(t, bare.Unwrap())
}
