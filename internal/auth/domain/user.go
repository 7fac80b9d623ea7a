package domain

import (
	"time"

	"github.com/aussiebroadwan/doorman/pkg/idx"
)

// User is a registered identity. Email is unique across users and is
// matched exactly, without case folding.
type User struct {
	ID           idx.ID
	Name         string
	Email        string
	PasswordHash string // bcrypt encoded
	RoleID       idx.ID // Foreign key to roles table
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
