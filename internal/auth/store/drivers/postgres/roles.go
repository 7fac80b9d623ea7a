package postgres

import (
	"context"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/pkg/idx"
)

type rolesRepo struct {
	db DBTX
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id idx.ID) (domain.Role, error) {
	query := `SELECT id, name, created_at FROM roles WHERE id = $1`
	return scanRole(r.db.QueryRowContext(ctx, query, id))
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	query := `SELECT id, name, created_at FROM roles WHERE name = $1`
	return scanRole(r.db.QueryRowContext(ctx, query, name))
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	query := `INSERT INTO roles (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.db.ExecContext(ctx, query, role.ID, role.Name, role.CreatedAt)
	return mapConstraint(err)
}

func scanRole(row interface{ Scan(...any) error }) (domain.Role, error) {
	var r domain.Role
	if err := row.Scan(&r.ID, &r.Name, &r.CreatedAt); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return r, nil
}
