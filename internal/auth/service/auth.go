package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/pkg/idx"
	"github.com/aussiebroadwan/doorman/pkg/jwtx"
	"github.com/aussiebroadwan/doorman/pkg/slogx"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailAlreadyTaken  = errors.New("email_already_taken")
)

type AuthService struct {
	Store       store.Store
	Credentials *CredentialHelper

	// DefaultRole is the role name assigned at registration.
	DefaultRole string
}

// Login checks email and password and mints an access token.
//
// The email must match a stored identity exactly; no case folding is applied.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	ok, err := s.Credentials.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		l.Error("stored password hash unusable",
			slog.String("user_id", u.ID.String()),
			slog.Any("error", err),
		)
		return "", err
	}
	if !ok {
		l.Info("login rejected", slog.String("user_id", u.ID.String()))
		return "", ErrInvalidCredentials
	}

	return s.issueFor(u)
}

// Register creates a new identity with the default role and mints an access
// token for it. An email already on file yields ErrEmailAlreadyTaken, as does
// losing a race on the store's unique constraint.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return "", ErrEmailAlreadyTaken
	case !errors.Is(err, store.ErrNotFound):
		return "", fmt.Errorf("lookup user: %w", err)
	}

	// Hashing stays outside the transaction so the write lock is not held
	// for the duration of bcrypt.
	hash, err := s.Credentials.HashPassword(password)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetRoleByName(ctx, s.defaultRole())
		if err != nil {
			return fmt.Errorf("default role %q: %w", s.defaultRole(), err)
		}
		u.RoleID = role.ID

		if err := tx.Users().CreateUser(ctx, u); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailAlreadyTaken
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	l.Info("user registered",
		slog.String("user_id", u.ID.String()),
		slog.String("role_id", u.RoleID.String()),
	)

	return s.issueFor(u)
}

func (s *AuthService) issueFor(u domain.User) (string, error) {
	return s.Credentials.IssueToken(jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: u.ID.String()},
		Email:            u.Email,
		Name:             u.Name,
		RoleID:           u.RoleID.String(),
	})
}

func (s *AuthService) defaultRole() string {
	if s.DefaultRole == "" {
		return domain.RoleMember
	}
	return s.DefaultRole
}
