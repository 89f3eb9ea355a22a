// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `u.id, u.name, u.email, u.password_hash, u.role_id, r.name, u.created_at, u.updated_at`

const (
	selectUserSQL = `SELECT ` + userColumns + ` FROM users u JOIN roles r ON r.id = u.role_id`

	getUserByIDSQL    = selectUserSQL + ` WHERE u.id = $1`
	getUserByEmailSQL = selectUserSQL + ` WHERE lower(u.email) = lower($1)`

	createUserSQL = `INSERT INTO users (id, name, email, password_hash, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateUserSQL = `UPDATE users SET name = $2, email = $3, role_id = $4, updated_at = now() WHERE id = $1`

	updatePasswordSQL = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`

	deleteUserSQL = `DELETE FROM users WHERE id = $1`

	listIDsByRolesSQL = `SELECT u.id FROM users u JOIN roles r ON r.id = u.role_id
		WHERE r.name = ANY($1) AND u.id <> $2
		ORDER BY u.id`

	listIDsExceptSQL = `SELECT id FROM users WHERE id <> $1 ORDER BY id`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user with its role name.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &u, nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Unknown ids are skipped. Used by the dataloader.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(userColumns).
		From("users u").Join("roles r ON r.id = u.role_id").
		Where(squirrel.Eq{"u.id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get users: %w", err)
	}

	return r.queryUsers(ctx, sql, args...)
}

// List returns one page of users, newest first, and the number of users
// matching the search on name or email.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{}
	if f.Search != "" {
		pattern := "%" + postgres.EscapeLike(f.Search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"u.name": pattern},
			squirrel.ILike{"u.email": pattern},
		})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("users u").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count users: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	meta := domain.NewPageMeta(total, f.Page, f.PerPage)
	listSQL, listArgs, err := postgres.Builder().
		Select(userColumns).
		From("users u").Join("roles r ON r.id = u.role_id").
		Where(where).
		OrderBy("u.created_at DESC", "u.id").
		Limit(uint64(f.PerPage)).Offset(uint64(meta.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list users: %w", err)
	}

	users, err := r.queryUsers(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// ListIDsByRoles returns the ids of users holding any of roles, excluding
// the user exclude.
func (r *Repo) ListIDsByRoles(ctx context.Context, roles []domain.Role, exclude uuid.UUID) ([]uuid.UUID, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listIDsByRolesSQL, names, exclude)
	if err != nil {
		return nil, fmt.Errorf("list user ids by roles: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan user ids: %w", err)
	}
	return ids, nil
}

// ListIDsExcept returns the ids of every user other than exclude.
func (r *Repo) ListIDsExcept(ctx context.Context, exclude uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listIDsExceptSQL, exclude)
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan user ids: %w", err)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns it with its role name.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, createUserSQL,
		u.ID, u.Name, u.Email, u.PasswordHash, u.RoleID, u.CreatedAt, u.UpdatedAt,
	); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return r.GetByID(ctx, u.ID)
}

// Update sets name, email and role of a user.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name, email string, roleID uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateUserSQL, id, name, email, roleID)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updatePasswordSQL, id, hash)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a user. Authored items, comments, notifications and login
// logs cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteUserSQL, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryUsers(ctx context.Context, sql string, args ...any) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RoleID, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, nil
}
