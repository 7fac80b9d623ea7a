package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(t *testing.T) *Hasher {
	t.Helper()
	h, err := NewHasher(bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func TestNewHasher(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		wantCost int
		wantErr  bool
	}{
		{"zero selects default", 0, DefaultCost, false},
		{"minimum cost", bcrypt.MinCost, bcrypt.MinCost, false},
		{"explicit default", 10, 10, false},
		{"below minimum", 3, 0, true},
		{"above maximum", 32, 0, true},
		{"negative", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHasher(tt.cost)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrHashing)
				require.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantCost, h.Cost())
		})
	}
}

func TestHasher_Hash(t *testing.T) {
	h := newTestHasher(t)

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"max length password", strings.Repeat("a", 72)},
		{"empty password", ""},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$2a$04$"), "hash should carry version and cost")
			require.NotContains(t, hash, tt.password+"$")

			ok, err := h.Verify(tt.password, hash)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestHasher_Hash_TooLong(t *testing.T) {
	h := newTestHasher(t)

	hash, err := h.Hash(strings.Repeat("a", 73))
	require.ErrorIs(t, err, ErrHashing)
	require.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
	require.Empty(t, hash)
}

func TestHasher_Hash_UniqueSalts(t *testing.T) {
	h := newTestHasher(t)
	password := "samepassword"

	hash1, err := h.Hash(password)
	require.NoError(t, err)
	hash2, err := h.Hash(password)
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")

	for _, hash := range []string{hash1, hash2} {
		ok, err := h.Verify(password, hash)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestHasher_Verify_WrongPassword(t *testing.T) {
	h := newTestHasher(t)
	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name          string
		wrongPassword string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"extra space", "correct-password "},
		{"empty password", ""},
		{"similar password", "correct-passwor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify(tt.wrongPassword, hash)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestHasher_Verify_InvalidHash(t *testing.T) {
	h := newTestHasher(t)

	tests := []struct {
		name        string
		invalidHash string
	}{
		{"empty hash", ""},
		{"too short", "$2a$10$abc"},
		{"wrong prefix", "x" + strings.Repeat("a", 59)},
		{"argon2 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdGx5c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("test-password", tt.invalidHash)
			require.ErrorIs(t, err, ErrHashing)
			require.False(t, ok)
		})
	}
}

func TestVerifyPassword_ReadsCostFromHash(t *testing.T) {
	hash, err := newTestHasher(t).Hash("password123")
	require.NoError(t, err)

	ok, err := VerifyPassword("password123", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword("password124", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, DefaultCost, cost)
}

func TestGeneratePassword(t *testing.T) {
	for range 10 {
		password, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, password, 16)

		for _, char := range password {
			valid := (char >= 'a' && char <= 'z') ||
				(char >= 'A' && char <= 'Z') ||
				(char >= '0' && char <= '9')
			require.True(t, valid, "password should only contain alphanumeric characters")
		}
	}
}

func TestGeneratePassword_CanBeHashed(t *testing.T) {
	h := newTestHasher(t)

	password, err := GeneratePassword()
	require.NoError(t, err)

	hash, err := h.Hash(password)
	require.NoError(t, err)

	ok, err := h.Verify(password, hash)
	require.NoError(t, err)
	require.True(t, ok)
}
