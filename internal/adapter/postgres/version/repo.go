// Package version implements the append-only item version repository.
package version

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// Repo provides version persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new version repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	createVersionSQL = `INSERT INTO versions (id, knowledge_item_id, version_number, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, knowledge_item_id, version_number, created_at`

	// Numbers strictly increase per item, so the numeric order is the
	// creation order even when two rows share a timestamp.
	latestVersionSQL = `SELECT version_number FROM versions
		WHERE knowledge_item_id = $1
		ORDER BY version_number::numeric DESC, created_at DESC
		LIMIT 1`

	listVersionsSQL = `SELECT id, knowledge_item_id, version_number, created_at FROM versions
		WHERE knowledge_item_id = $1
		ORDER BY version_number::numeric ASC`
)

// Create appends a version row.
func (r *Repo) Create(ctx context.Context, v domain.Version) (domain.Version, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanVersion(q.QueryRow(ctx, createVersionSQL, v.ID, v.KnowledgeItemID, v.VersionNumber, v.CreatedAt))
	if err != nil {
		return domain.Version{}, postgres.MapError(err, "version", v.KnowledgeItemID)
	}
	return created, nil
}

// Latest returns the version number of the newest version of an item, or
// an empty string when the item has none.
func (r *Repo) Latest(ctx context.Context, itemID uuid.UUID) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, latestVersionSQL, itemID)
	if err != nil {
		return "", postgres.MapError(err, "version", itemID)
	}
	numbers, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", fmt.Errorf("scan latest version %s: %w", itemID, err)
	}
	if len(numbers) == 0 {
		return "", nil
	}
	return numbers[0], nil
}

// ListByItem returns all versions of an item, oldest first.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Version, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listVersionsSQL, itemID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	versions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Version, error) {
		return scanVersion(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan versions: %w", err)
	}
	return versions, nil
}

func scanVersion(row pgx.Row) (domain.Version, error) {
	var v domain.Version
	if err := row.Scan(&v.ID, &v.KnowledgeItemID, &v.VersionNumber, &v.CreatedAt); err != nil {
		return domain.Version{}, err
	}
	v.CreatedAt = v.CreatedAt.UTC()
	return v, nil
}
