package sqlite

import (
	"context"

	"github.com/aussiebroadwan/doorman/internal/auth/domain"
	"github.com/aussiebroadwan/doorman/pkg/idx"
)

type rolesRepo struct {
	db dbtx
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id idx.ID) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM roles WHERE id = ?`, id)
	return scanRole(row)
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM roles WHERE name = ?`, name)
	return scanRole(row)
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (id, name, created_at) VALUES (?, ?, ?)`,
		role.ID, role.Name, role.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func scanRole(row rowScanner) (domain.Role, error) {
	var r domain.Role
	if err := row.Scan(&r.ID, &r.Name, &r.CreatedAt); err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return r, nil
}
