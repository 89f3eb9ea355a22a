// Package role implements the role repository using PostgreSQL.
package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// Repo provides role persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new role repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	selectRoleSQL = `SELECT r.id, r.name, r.created_at,
			(SELECT count(*) FROM users u WHERE u.role_id = r.id) AS user_count
		FROM roles r`

	listRolesSQL     = selectRoleSQL + ` ORDER BY r.name`
	getRoleByIDSQL   = selectRoleSQL + ` WHERE r.id = $1`
	getRoleByNameSQL = selectRoleSQL + ` WHERE r.name = $1`

	createRoleSQL = `INSERT INTO roles (id, name, created_at, updated_at) VALUES ($1, $2, $3, $3)`
	updateRoleSQL = `UPDATE roles SET name = $2, updated_at = now() WHERE id = $1`
	deleteRoleSQL = `DELETE FROM roles WHERE id = $1`
)

// List returns all roles with their user counts, by name.
func (r *Repo) List(ctx context.Context) ([]domain.RoleRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRolesSQL)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	roles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RoleRecord, error) {
		return scanRole(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan roles: %w", err)
	}
	return roles, nil
}

// GetByID returns a role with its user count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RoleRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	role, err := scanRole(q.QueryRow(ctx, getRoleByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "role", id)
	}
	return &role, nil
}

// GetByName returns the role with the given name.
func (r *Repo) GetByName(ctx context.Context, name domain.Role) (*domain.RoleRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	role, err := scanRole(q.QueryRow(ctx, getRoleByNameSQL, string(name)))
	if err != nil {
		return nil, postgres.MapError(err, "role", name)
	}
	return &role, nil
}

// Create inserts a role. Duplicate names map to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, role domain.RoleRecord) (*domain.RoleRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, createRoleSQL, role.ID, string(role.Name), role.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "role", role.Name)
	}
	return r.GetByID(ctx, role.ID)
}

// Rename changes the name of a role.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name domain.Role) (*domain.RoleRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateRoleSQL, id, string(name))
	if err != nil {
		return nil, postgres.MapError(err, "role", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("role %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a role. The users.role_id foreign key is ON DELETE
// RESTRICT; a role that still has users yields domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteRoleSQL, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return fmt.Errorf("role %s has users: %w", id, domain.ErrConflict)
		}
		return postgres.MapError(err, "role", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("role %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanRole(row pgx.Row) (domain.RoleRecord, error) {
	var (
		role domain.RoleRecord
		name string
	)
	if err := row.Scan(&role.ID, &name, &role.CreatedAt, &role.UserCount); err != nil {
		return domain.RoleRecord{}, err
	}
	role.Name = domain.Role(name)
	role.CreatedAt = role.CreatedAt.UTC()
	return role, nil
}
