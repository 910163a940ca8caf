package auth

import "errors"

// Token verification errors. Callers map all of them to 401.
var (
	// ErrMalformedToken indicates the token is not a well-formed compact JWS.
	ErrMalformedToken = errors.New("malformed authentication token")

	// ErrBadSignature indicates the signature does not verify under the
	// configured secret, or the token uses a different algorithm.
	ErrBadSignature = errors.New("authentication token signature is invalid")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrInvalidClaims indicates a verified token whose claims are unusable:
	// wrong issuer or audience, no subject, or an unknown role.
	ErrInvalidClaims = errors.New("authentication token claims are invalid")
)

// ErrDecrypt is returned when a ciphertext cannot be opened, whether because
// it was tampered with, truncated, or sealed under another key.
var ErrDecrypt = errors.New("failed to decrypt field")
