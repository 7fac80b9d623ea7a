package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/doorman/pkg/cryptox"
	"github.com/aussiebroadwan/doorman/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
)

// CredentialsConfig holds everything the credential helper needs. It is
// passed explicitly at construction; nothing is read from the environment.
type CredentialsConfig struct {
	BcryptCost int           // zero selects cryptox.DefaultCost
	Secret     []byte        // HS256 signing key
	Signer     jwtx.Signer   // overrides Secret when set
	TokenTTL   time.Duration // zero selects jwtx.DefaultAccessTokenTTL
	Issuer     string
}

// CredentialHelper hashes and verifies passwords and mints access tokens.
type CredentialHelper struct {
	hasher *cryptox.Hasher
	signer jwtx.Signer
	ttl    time.Duration
	issuer string

	now func() time.Time
}

// NewCredentialHelper validates cfg and builds the helper. Without a Signer,
// an empty secret fails with jwtx.ErrSigning. An out-of-range cost fails
// with cryptox.ErrHashing.
func NewCredentialHelper(cfg CredentialsConfig) (*CredentialHelper, error) {
	hasher, err := cryptox.NewHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	signer := cfg.Signer
	if signer == nil {
		signer, err = jwtx.NewSignerHS256(cfg.Secret)
		if err != nil {
			return nil, err
		}
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	return &CredentialHelper{
		hasher: hasher,
		signer: signer,
		ttl:    ttl,
		issuer: cfg.Issuer,
		now:    time.Now,
	}, nil
}

// HashPassword returns the bcrypt hash of plaintext.
func (h *CredentialHelper) HashPassword(plaintext string) (string, error) {
	return h.hasher.Hash(plaintext)
}

// VerifyPassword reports whether plaintext matches hash.
func (h *CredentialHelper) VerifyPassword(plaintext, hash string) (bool, error) {
	return h.hasher.Verify(plaintext, hash)
}

// IssueToken signs claims after stamping the time window, issuer and jti.
// Identity fields (subject, email, name, role) are taken from claims as-is.
func (h *CredentialHelper) IssueToken(claims jwtx.Claims) (string, error) {
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", jwtx.ErrSigning)
	}

	now := h.now().UTC()
	claims.Issuer = h.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.NotBefore = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(h.ttl))
	claims.ID = jwtx.NewJTI()

	token, err := h.signer.Sign(claims)
	if err != nil {
		if errors.Is(err, jwtx.ErrSigning) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", jwtx.ErrSigning, err)
	}
	return token, nil
}

// TokenTTL reports the lifetime of minted tokens.
func (h *CredentialHelper) TokenTTL() time.Duration { return h.ttl }

// Signer exposes the underlying signer for readiness checks.
func (h *CredentialHelper) Signer() jwtx.Signer { return h.signer }
