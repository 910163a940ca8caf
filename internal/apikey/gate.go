// Package apikey checks the shared client key carried in the X-Api-Key
// header.
package apikey

import (
	"crypto/subtle"
	"errors"
)

// HeaderName is the request header carrying the client key.
const HeaderName = "X-Api-Key"

// ErrEmptySecret is returned by NewGate when no key is configured.
var ErrEmptySecret = errors.New("api key secret cannot be empty")

// Outcome is the result of checking a presented key.
type Outcome int

const (
	Allowed Outcome = iota
	MissingKey
	InvalidKey
)

func (o Outcome) String() string {
	switch o {
	case Allowed:
		return "allowed"
	case MissingKey:
		return "missing_key"
	case InvalidKey:
		return "invalid_key"
	default:
		return "unknown"
	}
}

// Gate compares presented keys against the configured secret. It holds no
// per-request state and is safe for concurrent use.
type Gate struct {
	secret []byte
}

// NewGate creates a Gate for secret.
func NewGate(secret string) (*Gate, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Gate{secret: []byte(secret)}, nil
}

// Check classifies a presented key. present distinguishes an absent header
// from one sent with an empty value; the latter is InvalidKey.
func (g *Gate) Check(presented string, present bool) Outcome {
	if !present {
		return MissingKey
	}
	if subtle.ConstantTimeCompare([]byte(presented), g.secret) != 1 {
		return InvalidKey
	}
	return Allowed
}
