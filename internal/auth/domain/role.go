package domain

import (
	"time"

	"github.com/aussiebroadwan/doorman/pkg/idx"
)

// Well-known role names seeded by the baseline schema.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type Role struct {
	ID        idx.ID
	Name      string
	CreatedAt time.Time
}
