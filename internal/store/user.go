package store

import (
	"context"

	"github.com/phrazzld/forecast-api/internal/domain"
)

// UserStore persists registered credentials.
type UserStore interface {
	// Create saves a new user.
	// Returns ErrUsernameExists if the username is already taken, including
	// when a concurrent Create for the same username won the race.
	// Returns ErrInvalidEntity wrapping the domain error if the user is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by exact username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
