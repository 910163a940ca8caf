package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/forecast-api/internal/ratelimit"
)

// MockLimiter implements ratelimit.Limiter for testing
type MockLimiter struct {
	AdmitFn func(ctx context.Context, key string, now time.Time) (bool, error)

	Allow bool
	Err   error

	// Keys records every key passed to Admit
	Keys []string
}

var _ ratelimit.Limiter = (*MockLimiter)(nil)

// Admit implements the Limiter interface
func (m *MockLimiter) Admit(ctx context.Context, key string, now time.Time) (bool, error) {
	m.Keys = append(m.Keys, key)
	if m.AdmitFn != nil {
		return m.AdmitFn(ctx, key, now)
	}
	return m.Allow, m.Err
}
