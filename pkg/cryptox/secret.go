package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Secret size constants (in bytes before encoding).
const (
	// SecretSize256 provides 256 bits of entropy, the minimum for an HS256 key.
	SecretSize256 = 32
	// SecretSize512 provides 512 bits of entropy (86 chars base64url).
	SecretSize512 = 64
)

// GenerateSecret creates a cryptographically secure random secret of the
// given byte length, returned base64url-encoded without padding.
func GenerateSecret(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("secret size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random secret: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// MustGenerateSecret is like GenerateSecret but panics on error.
// Use this only during initialization.
func MustGenerateSecret(size int) string {
	secret, err := GenerateSecret(size)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to generate secret: %v", err))
	}
	return secret
}
