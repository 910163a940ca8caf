package mocks

import (
	"errors"

	"github.com/phrazzld/forecast-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing. By default
// the "hash" is the password with a fixed prefix.
type MockPasswordHasher struct {
	HashFn   func(password string) (string, error)
	VerifyFn func(hash, password string) (bool, error)

	// VerifyCallCount tracks how many times Verify was called
	VerifyCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the PasswordHasher interface
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if password == "" {
		return "", errors.New("empty password")
	}
	return "hashed:" + password, nil
}

// Verify implements the PasswordHasher interface
func (m *MockPasswordHasher) Verify(hash, password string) (bool, error) {
	m.VerifyCallCount++
	if m.VerifyFn != nil {
		return m.VerifyFn(hash, password)
	}
	return hash == "hashed:"+password, nil
}
