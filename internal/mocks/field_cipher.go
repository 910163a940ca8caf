package mocks

import (
	"strings"

	"github.com/phrazzld/forecast-api/internal/service/auth"
)

// MockFieldCipher implements auth.FieldCipher for testing with a reversible
// prefix instead of real encryption.
type MockFieldCipher struct {
	EncryptFn func(plaintext string) (string, error)
	DecryptFn func(ciphertext string) (string, error)
}

var _ auth.FieldCipher = (*MockFieldCipher)(nil)

// Encrypt implements the FieldCipher interface
func (m *MockFieldCipher) Encrypt(plaintext string) (string, error) {
	if m.EncryptFn != nil {
		return m.EncryptFn(plaintext)
	}
	return "enc:" + plaintext, nil
}

// Decrypt implements the FieldCipher interface
func (m *MockFieldCipher) Decrypt(ciphertext string) (string, error) {
	if m.DecryptFn != nil {
		return m.DecryptFn(ciphertext)
	}
	if !strings.HasPrefix(ciphertext, "enc:") {
		return "", auth.ErrDecrypt
	}
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}
