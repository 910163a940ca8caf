package auth

import (
	"context"
	"slices"
	"time"

	"github.com/phrazzld/forecast-api/internal/domain"
)

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue creates a signed token for username carrying role.
	Issue(ctx context.Context, username string, role domain.Role) (string, error)

	// Verify checks the token's algorithm, signature, expiry, issuer and
	// audience and returns its claims. Errors are ErrMalformedToken,
	// ErrBadSignature, ErrExpiredToken or ErrInvalidClaims.
	Verify(ctx context.Context, token string) (*Claims, error)

	// Lifetime returns how long issued tokens stay valid.
	Lifetime() time.Duration
}

// Claims is the verified content of a token.
type Claims struct {
	Subject   string
	ID        string
	Role      domain.Role
	Issuer    string
	Audience  []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Authorize reports whether claims carry one of the required roles. Roles
// are matched exactly; admin does not imply user.
func Authorize(claims *Claims, required ...domain.Role) bool {
	if claims == nil || len(required) == 0 {
		return false
	}
	return slices.Contains(required, claims.Role)
}
