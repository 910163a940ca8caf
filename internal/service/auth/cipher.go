package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// fieldKeyInfo is the HKDF context string for field keys.
const fieldKeyInfo = "forecast-api field encryption v1"

// FieldCipher encrypts individual sensitive fields before storage.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// AEADCipher implements FieldCipher with XChaCha20-Poly1305. Output is
// base64url(nonce || sealed).
type AEADCipher struct {
	key []byte
}

var _ FieldCipher = (*AEADCipher)(nil)

// NewAEADCipher derives a 256-bit key from secret with HKDF-SHA256.
func NewAEADCipher(secret string) (*AEADCipher, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("field encryption key must be at least %d characters", MinSecretLength)
	}

	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(fieldKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to derive field encryption key: %w", err)
	}

	return &AEADCipher{key: key}, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (c *AEADCipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to initialise cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt. Any failure is ErrDecrypt.
func (c *AEADCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrDecrypt
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to initialise cipher: %w", err)
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return "", ErrDecrypt
	}

	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(plain), nil
}
