package postgres

import (
	"context"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/pkg/idx"
)

type usersRepo struct {
	db DBTX
}

func (r *usersRepo) GetUserByID(ctx context.Context, id idx.ID) (domain.User, error) {
	query :=
		`SELECT id, name, email, password_hash, role_id, created_at, updated_at FROM users
		 WHERE id = $1`

	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	query :=
		`SELECT id, name, email, password_hash, role_id, created_at, updated_at FROM users
		 WHERE email = $1`

	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	query :=
		`INSERT INTO users (id, name, email, password_hash, role_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.RoleID, u.CreatedAt, u.UpdatedAt)
	return mapConstraint(err)
}

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
