package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/platform/logger"
	"github.com/phrazzld/forecast-api/internal/store"
)

// UserStore is a map-backed store.UserStore.
type UserStore struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	logger *slog.Logger
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty UserStore.
func NewUserStore(logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		users:  make(map[string]domain.User),
		logger: logger.With(slog.String("component", "memory_user_store")),
	}
}

// Create implements store.UserStore. The existence check and insert happen
// under one lock.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	s.users[user.Username] = *user

	logger.FromContextOrDefault(ctx, s.logger).Debug("user stored",
		slog.String("user_id", user.ID.String()))
	return nil
}

// GetByUsername implements store.UserStore. It returns a copy.
func (s *UserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}
