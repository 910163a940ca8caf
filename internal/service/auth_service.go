package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/service/auth"
	"github.com/phrazzld/forecast-api/internal/store"
)

// AnonymousSubject is the token subject used for role-only logins.
const AnonymousSubject = "anonymous"

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Username string
	Password string
	// Role defaults to domain.DefaultRole when empty.
	Role string
	// SSN is optional; when present it is stored encrypted.
	SSN string
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService registers users and exchanges credentials for tokens.
type AuthService interface {
	// Register creates a new user. Returns ErrUsernameTaken if the username
	// exists, ErrAdminRegistrationDisabled for a disallowed admin role, or an
	// error wrapping domain.ErrValidation for bad input.
	Register(ctx context.Context, in RegisterInput) error

	// Login verifies credentials and issues a token. Returns
	// ErrInvalidCredentials for an unknown user or a wrong password.
	Login(ctx context.Context, username, password string) (*LoginResult, error)

	// IssueForRole issues a token for role without credentials. Returns
	// ErrRoleOnlyLoginDisabled unless enabled in configuration.
	IssueForRole(ctx context.Context, role string) (*LoginResult, error)

	// RevealSSN decrypts the user's stored SSN. Returns store.ErrUserNotFound
	// for an unknown user and ErrNoSensitiveField when none is stored.
	RevealSSN(ctx context.Context, username string) (string, error)
}

// AuthServiceOptions holds optional AuthService settings.
type AuthServiceOptions struct {
	AllowRoleOnlyLogin     bool
	AllowAdminRegistration bool
	TimeFunc               func() time.Time
}

type authService struct {
	users         store.UserStore
	hasher        auth.PasswordHasher
	cipher        auth.FieldCipher
	tokens        auth.TokenService
	allowRoleOnly bool
	allowAdmin    bool
	timeFunc      func() time.Time
	logger        *slog.Logger
}

var _ AuthService = (*authService)(nil)

// NewAuthService creates an AuthService.
func NewAuthService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	cipher auth.FieldCipher,
	tokens auth.TokenService,
	logger *slog.Logger,
	opts AuthServiceOptions,
) (AuthService, error) {
	if users == nil {
		return nil, fmt.Errorf("user store cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("password hasher cannot be nil")
	}
	if cipher == nil {
		return nil, fmt.Errorf("field cipher cannot be nil")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	timeFunc := opts.TimeFunc
	if timeFunc == nil {
		timeFunc = time.Now
	}

	return &authService{
		users:         users,
		hasher:        hasher,
		cipher:        cipher,
		tokens:        tokens,
		allowRoleOnly: opts.AllowRoleOnlyLogin,
		allowAdmin:    opts.AllowAdminRegistration,
		timeFunc:      timeFunc,
		logger:        logger.With("component", "auth_service"),
	}, nil
}

// Register implements AuthService.
func (s *authService) Register(ctx context.Context, in RegisterInput) error {
	role := domain.DefaultRole
	if in.Role != "" {
		parsed, err := domain.ParseRole(in.Role)
		if err != nil {
			return err
		}
		role = parsed
	}
	if err := domain.ValidateUsername(in.Username); err != nil {
		return err
	}
	if in.Password == "" {
		return fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if len(in.Password) > domain.MaxPasswordBytes {
		return domain.ErrPasswordTooLong
	}
	if role == domain.RoleAdmin && !s.allowAdmin {
		s.logger.Warn("admin self-registration rejected", "username", in.Username)
		return ErrAdminRegistrationDisabled
	}

	_, err := s.users.GetByUsername(ctx, in.Username)
	switch {
	case err == nil:
		s.logger.Debug("registration rejected: username taken", "username", in.Username)
		return ErrUsernameTaken
	case !errors.Is(err, store.ErrUserNotFound):
		s.logger.Error("failed to look up username", "error", err)
		return NewServiceError("auth", "register", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return NewServiceError("auth", "register", err)
	}

	user, err := domain.NewUser(in.Username, hash, role)
	if err != nil {
		return err
	}

	if in.SSN != "" {
		encrypted, err := s.cipher.Encrypt(in.SSN)
		if err != nil {
			return NewServiceError("auth", "register", err)
		}
		user.EncryptedSSN = encrypted
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			// Another registration for the same name committed first.
			s.logger.Debug("registration lost race for username", "username", in.Username)
			return ErrUsernameTaken
		}
		s.logger.Error("failed to save user", "error", err, "username", in.Username)
		return NewServiceError("auth", "register", err)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"username", user.Username,
		"role", user.Role)
	return nil
}

// Login implements AuthService.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login failed: unknown user")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login", "error", err)
		return nil, NewServiceError("auth", "login", err)
	}

	ok, err := s.hasher.Verify(user.HashedPassword, password)
	if err != nil {
		s.logger.Error("stored password hash is unusable", "error", err, "user_id", user.ID)
		return nil, NewServiceError("auth", "login", err)
	}
	if !ok {
		s.logger.Debug("login failed: wrong password", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return s.issue(ctx, "login", user.Username, user.Role)
}

// IssueForRole implements AuthService.
func (s *authService) IssueForRole(ctx context.Context, role string) (*LoginResult, error) {
	if !s.allowRoleOnly {
		return nil, ErrRoleOnlyLoginDisabled
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	s.logger.Warn("issuing role-only token", "role", parsed)
	return s.issue(ctx, "issue_for_role", AnonymousSubject, parsed)
}

func (s *authService) issue(ctx context.Context, op, subject string, role domain.Role) (*LoginResult, error) {
	issuedAt := s.timeFunc()

	token, err := s.tokens.Issue(ctx, subject, role)
	if err != nil {
		return nil, NewServiceError("auth", op, err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: issuedAt.Add(s.tokens.Lifetime()),
	}, nil
}

// RevealSSN implements AuthService.
func (s *authService) RevealSSN(ctx context.Context, username string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", err
		}
		return "", NewServiceError("auth", "reveal_ssn", err)
	}
	if !user.HasSSN() {
		return "", ErrNoSensitiveField
	}

	ssn, err := s.cipher.Decrypt(user.EncryptedSSN)
	if err != nil {
		s.logger.Error("failed to decrypt stored ssn", "error", err, "user_id", user.ID)
		return "", NewServiceError("auth", "reveal_ssn", err)
	}
	return ssn, nil
}
