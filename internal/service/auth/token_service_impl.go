package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/forecast-api/internal/config"
	"github.com/phrazzld/forecast-api/internal/domain"
	"github.com/phrazzld/forecast-api/internal/platform/logger"
)

// MinSecretLength is the shortest accepted HMAC signing secret.
const MinSecretLength = 32

// hmacTokenService is a TokenService signing with HMAC-SHA256.
type hmacTokenService struct {
	signingKey    []byte
	issuer        string
	audience      string
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
}

// tokenClaims is the JWT payload.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	return newTokenService(cfg, time.Now)
}

func newTokenService(cfg config.AuthConfig, timeFunc func() time.Time) (*hmacTokenService, error) {
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", MinSecretLength)
	}
	if cfg.TokenLifetimeMinutes <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive, got %d minutes", cfg.TokenLifetimeMinutes)
	}
	if timeFunc == nil {
		timeFunc = time.Now
	}

	return &hmacTokenService{
		signingKey:    []byte(cfg.JWTSecret),
		issuer:        cfg.Issuer,
		audience:      cfg.Audience,
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      timeFunc,
	}, nil
}

func (s *hmacTokenService) Lifetime() time.Duration {
	return s.tokenLifetime
}

// Issue creates a signed HS256 token.
func (s *hmacTokenService) Issue(ctx context.Context, username string, role domain.Role) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			"error", err,
			"role", role,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token. There is no leeway on expiry.
func (s *hmacTokenService) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithStrictDecoding(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time {
			return now
		}),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(s.audience))
	}

	parser := jwt.NewParser(parserOpts...)
	token, err := parser.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		})
	if err != nil {
		mapped := mapParseError(err)
		// Strict decoding rejects non-canonical signature text, including
		// flipped padding bits that lenient decoding would ignore.
		if errors.Is(mapped, ErrMalformedToken) && signatureUndecodable(parser, tokenString) {
			mapped = ErrBadSignature
		}
		log.Debug("token verification failed",
			"reason", mapped.Error(),
			"error_type", fmt.Sprintf("%T", err))
		return nil, mapped
	}

	tc, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		log.Debug("token verification failed: unexpected claims type")
		return nil, ErrInvalidClaims
	}

	if tc.Subject == "" {
		log.Debug("token verification failed: missing subject", "token_id", tc.ID)
		return nil, ErrInvalidClaims
	}

	role, err := domain.ParseRole(tc.Role)
	if err != nil {
		log.Debug("token verification failed: unknown role",
			"token_id", tc.ID,
			"role", tc.Role)
		return nil, ErrInvalidClaims
	}

	claims := &Claims{
		Subject:  tc.Subject,
		ID:       tc.ID,
		Role:     role,
		Issuer:   tc.Issuer,
		Audience: []string(tc.Audience),
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}

	log.Debug("token verified",
		"token_id", claims.ID,
		"role", claims.Role,
		"expiry", claims.ExpiresAt)

	return claims, nil
}

// signatureUndecodable reports whether tokenString has a header and claims
// that decode cleanly. A malformed error for such a token can only come from
// the signature segment.
func signatureUndecodable(parser *jwt.Parser, tokenString string) bool {
	_, _, err := parser.ParseUnverified(tokenString, &tokenClaims{})
	return err == nil
}

// mapParseError converts jwt parser errors to this package's sentinels.
// Order matters: a token can fail several checks at once.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	default:
		return ErrInvalidClaims
	}
}
