// Package knowledge implements the knowledge item repository using PostgreSQL.
package knowledge

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// Repo provides knowledge item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new knowledge item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, author_id, title, description, status, created_at, updated_at`

const (
	createItemSQL = `INSERT INTO knowledge_items (id, author_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + itemColumns

	getItemSQL = `SELECT ` + itemColumns + ` FROM knowledge_items WHERE id = $1`

	getItemForUpdateSQL = getItemSQL + ` FOR UPDATE`

	updateContentSQL = `UPDATE knowledge_items
		SET title = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + itemColumns

	updateStatusSQL = `UPDATE knowledge_items SET status = $2, updated_at = now() WHERE id = $1`

	deleteItemSQL = `DELETE FROM knowledge_items WHERE id = $1`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a knowledge item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.KnowledgeItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, getItemSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "knowledge_item", id)
	}
	return &item, nil
}

// GetByIDForUpdate returns a knowledge item and locks its row until the
// surrounding transaction ends. Outside a transaction the lock is released
// immediately.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.KnowledgeItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, getItemForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "knowledge_item", id)
	}
	return &item, nil
}

// List returns one page of items, newest first, and the total number of
// items matching the filter. Search matches title or description
// case-insensitively and combines with the status filter by AND.
func (r *Repo) List(ctx context.Context, f domain.ItemFilter) ([]domain.KnowledgeItem, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": int16(*f.Status)})
	}
	if f.Search != "" {
		pattern := "%" + postgres.EscapeLike(f.Search) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("knowledge_items").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count knowledge_items: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count knowledge_items: %w", err)
	}

	meta := domain.NewPageMeta(total, f.Page, f.PerPage)
	listSQL, listArgs, err := postgres.Builder().
		Select(itemColumns).From("knowledge_items").Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(f.PerPage)).Offset(uint64(meta.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list knowledge_items: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list knowledge_items: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.KnowledgeItem, error) {
		return scanItem(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("scan knowledge_items: %w", err)
	}

	return items, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new knowledge item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, item *domain.KnowledgeItem) (*domain.KnowledgeItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanItem(q.QueryRow(ctx, createItemSQL,
		item.ID, item.AuthorID, item.Title, item.Description, int16(item.Status), item.CreatedAt, item.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "knowledge_item", item.ID)
	}
	return &created, nil
}

// UpdateContent sets title and description. Status is never touched here.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, title, description string) (*domain.KnowledgeItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, updateContentSQL, id, title, description))
	if err != nil {
		return nil, postgres.MapError(err, "knowledge_item", id)
	}
	return &item, nil
}

// UpdateStatus writes the status field (and updated_at) only.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateStatusSQL, id, int16(status))
	if err != nil {
		return postgres.MapError(err, "knowledge_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("knowledge_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes an item; versions, tags and comments cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteItemSQL, id)
	if err != nil {
		return postgres.MapError(err, "knowledge_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("knowledge_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (domain.KnowledgeItem, error) {
	var (
		item      domain.KnowledgeItem
		status    int16
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&item.ID, &item.AuthorID, &item.Title, &item.Description, &status, &createdAt, &updatedAt); err != nil {
		return domain.KnowledgeItem{}, err
	}
	item.Status = domain.Status(status)
	item.CreatedAt = createdAt.UTC()
	item.UpdatedAt = updatedAt.UTC()
	return item, nil
}
