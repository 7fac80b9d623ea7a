package cryptox

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = bcrypt.DefaultCost

// ErrHashing is returned when the hashing primitive fails or a stored hash
// cannot be parsed. Callers match it with errors.Is.
var ErrHashing = errors.New("cryptox: hashing failed")

// Hasher hashes and verifies passwords with bcrypt at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher for the given cost. A cost of zero selects
// DefaultCost; anything else outside bcrypt's allowed range is rejected.
func NewHasher(cost int) (*Hasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: cost %d outside %d..%d", ErrHashing, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost}, nil
}

// Cost reports the work factor new hashes are generated with.
func (h *Hasher) Cost() int { return h.cost }

// Hash returns the bcrypt encoding of password, salt and cost included.
// Passwords longer than 72 bytes are refused rather than silently truncated.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashing, err)
	}
	return string(hash), nil
}

// Verify compares password against a bcrypt hash in constant time.
// A mismatch is reported as (false, nil); a hash that cannot be parsed
// yields ErrHashing.
func (h *Hasher) Verify(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrHashing, err)
	}
}

// HashPassword hashes password at DefaultCost.
func HashPassword(password string) (string, error) {
	return (&Hasher{cost: DefaultCost}).Hash(password)
}

// VerifyPassword reports whether password matches encodedHash.
func VerifyPassword(password, encodedHash string) (bool, error) {
	// Verification reads the cost from the hash itself.
	return (&Hasher{}).Verify(password, encodedHash)
}

// GeneratePassword returns a random 16 character alphanumeric password.
func GeneratePassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 16
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
