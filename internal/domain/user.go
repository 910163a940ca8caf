package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxUsernameLength bounds usernames accepted at registration.
const MaxUsernameLength = 64

// MaxPasswordBytes is the bcrypt input limit. It counts bytes, not runes.
const MaxPasswordBytes = 72

// User is a registered credential. It is created on registration, read on
// login and never mutated by the authentication flow.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	Role           Role      `json:"role"`

	// EncryptedSSN holds the sealed social security number, or "" when the
	// user did not supply one.
	EncryptedSSN string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a User with a fresh ID and creation timestamp.
// The password must already be hashed.
func NewUser(username, hashedPassword string, role Role) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		Username:       username,
		HashedPassword: hashedPassword,
		Role:           role,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	if !u.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

// HasSSN reports whether a sensitive field is stored for the user.
func (u *User) HasSSN() bool {
	return u.EncryptedSSN != ""
}

// ValidateUsername checks a username on its own, before any user exists.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}
