package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/doorman/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations(context.Background()))
	return s
}

func newTestAuthService(t *testing.T) (*AuthService, *sqlite.Store) {
	t.Helper()
	s := newTestStore(t)
	return &AuthService{Store: s, Credentials: newTestHelper(t)}, s
}

func verify(t *testing.T, token string) jwtx.Claims {
	t.Helper()
	claims, err := jwtx.NewVerifierHS256([]byte(testSecret), jwtx.VerifyOptions{Issuer: testIssuer}).Verify(token)
	require.NoError(t, err)
	return claims
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestAuthService(t)

	token, err := svc.Register(ctx, "Ada", "ada@example.com", "correct horse")
	require.NoError(t, err)

	claims := verify(t, token)
	require.Equal(t, "ada@example.com", claims.Email)
	require.Equal(t, "Ada", claims.Name)

	u, err := s.Users().GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID.String(), claims.Subject)
	require.NotEqual(t, "correct horse", u.PasswordHash)

	member, err := s.Roles().GetRoleByName(ctx, domain.RoleMember)
	require.NoError(t, err)
	require.Equal(t, member.ID, u.RoleID)
	require.Equal(t, member.ID.String(), claims.RoleID)
}

func TestRegister_ConfiguredDefaultRole(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestAuthService(t)
	svc.DefaultRole = domain.RoleAdmin

	_, err := svc.Register(ctx, "Root", "root@example.com", "correct horse")
	require.NoError(t, err)

	u, err := s.Users().GetUserByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	admin, err := s.Roles().GetRoleByName(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, admin.ID, u.RoleID)
}

func TestRegister_UnknownDefaultRole(t *testing.T) {
	svc, _ := newTestAuthService(t)
	svc.DefaultRole = "ghost"

	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "correct horse")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegister_EmailAlreadyTaken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "ada@example.com", "other password")
	require.ErrorIs(t, err, ErrEmailAlreadyTaken)

	// Matching is exact, so a differently cased address is a new identity.
	_, err = svc.Register(ctx, "Ada", "ADA@example.com", "correct horse")
	require.NoError(t, err)
}

func TestRegister_Concurrent(t *testing.T) {
	svc, _ := newTestAuthService(t)

	const n = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		taken   int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), "Ada", "race@example.com", "correct horse")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				success++
			case errors.Is(err, ErrEmailAlreadyTaken):
				taken++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, success)
	require.Equal(t, n-1, taken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "correct horse")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		token, err := svc.Login(ctx, "ada@example.com", "correct horse")
		require.NoError(t, err)
		require.Equal(t, "ada@example.com", verify(t, token).Email)
	})

	t.Run("tokens are fresh per login", func(t *testing.T) {
		a, err := svc.Login(ctx, "ada@example.com", "correct horse")
		require.NoError(t, err)
		b, err := svc.Login(ctx, "ada@example.com", "correct horse")
		require.NoError(t, err)
		require.NotEqual(t, verify(t, a).ID, verify(t, b).ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "ada@example.com", "battery staple")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "correct horse")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("case sensitive", func(t *testing.T) {
		_, err := svc.Login(ctx, "Ada@Example.com", "correct horse")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestAuthService(t)

	token, err := svc.Register(ctx, "Ada", "ada@example.com", "correct horse")
	require.NoError(t, err)
	sub := verify(t, token).Subject

	users := &UserService{Store: s}

	p, err := users.GetProfile(ctx, sub)
	require.NoError(t, err)
	require.Equal(t, "Ada", p.User.Name)
	require.Equal(t, domain.RoleMember, p.Role.Name)

	_, err = users.GetProfile(ctx, "not-a-ulid")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = users.GetProfile(ctx, "01HZY8Z0N4QK6V1ZP5T3K9W7XA")
	require.ErrorIs(t, err, ErrUserNotFound)
}
