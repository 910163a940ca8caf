package domain

import "fmt"

// Role is the authorization level carried in a user's tokens.
// Roles form a closed set with no hierarchy between them.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// DefaultRole is assigned when registration does not name a role.
const DefaultRole = RoleUser

// ParseRole converts s into a Role, rejecting anything outside the set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
