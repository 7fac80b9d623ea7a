package jwtx

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Signer implements the Signer interface using HMAC-SHA256.
type HS256Signer struct {
	key []byte
	alg string
}

// newHS256Signer copies the secret so later mutation by the caller has no
// effect on issued tokens.
func newHS256Signer(secret []byte) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty HS256 secret", ErrSigning)
	}
	key := make([]byte, len(secret))
	copy(key, secret)

	return &HS256Signer{
		key: key,
		alg: jwt.SigningMethodHS256.Alg(),
	}, nil
}

func (s *HS256Signer) Alg() string { return s.alg }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}
	return signed, nil
}

// Validate does a quick sanity check to make sure we actually have a key.
func (s *HS256Signer) Validate() error {
	if len(s.key) == 0 {
		return fmt.Errorf("%w: nil HS256 secret", ErrSigning)
	}
	return nil
}
