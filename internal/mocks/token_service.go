package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	IssueFn  func(ctx context.Context, username string, role domain.Role) (string, error)
	VerifyFn func(ctx context.Context, token string) (*auth.Claims, error)

	// Fixed values for simple cases
	Token         string
	IssueError    error
	Claims        *auth.Claims
	VerifyError   error
	TokenLifetime time.Duration

	// IssuedFor records the last Issue arguments
	IssuedFor struct {
		Username string
		Role     domain.Role
	}
}

var _ auth.TokenService = (*MockTokenService)(nil)

// Issue implements the TokenService interface
func (m *MockTokenService) Issue(ctx context.Context, username string, role domain.Role) (string, error) {
	m.IssuedFor.Username = username
	m.IssuedFor.Role = role

	if m.IssueFn != nil {
		return m.IssueFn(ctx, username, role)
	}
	return m.Token, m.IssueError
}

// Verify implements the TokenService interface
func (m *MockTokenService) Verify(ctx context.Context, token string) (*auth.Claims, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	return m.Claims, m.VerifyError
}

// Lifetime implements the TokenService interface
func (m *MockTokenService) Lifetime() time.Duration {
	if m.TokenLifetime == 0 {
		return 30 * time.Minute
	}
	return m.TokenLifetime
}
