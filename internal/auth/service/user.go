package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/internal/auth/store"
	"github.com/aussiebroadwan/doorman/pkg/idx"
)

// Profile is a user joined with its role.
type Profile struct {
	User domain.User
	Role domain.Role
}

type UserService struct {
	Store store.Store
}

// GetProfile fetches a user by id together with its role.
func (s *UserService) GetProfile(ctx context.Context, userID string) (Profile, error) {
	id, err := idx.Parse(userID)
	if err != nil {
		return Profile{}, ErrUserNotFound
	}

	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Profile{}, ErrUserNotFound
		}
		return Profile{}, err
	}

	role, err := s.Store.Roles().GetRoleByID(ctx, u.RoleID)
	if err != nil {
		return Profile{}, err
	}

	return Profile{User: u, Role: role}, nil
}
