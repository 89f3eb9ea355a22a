// Package tag implements the metadata tag repository using PostgreSQL.
package tag

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

// Repo provides metadata tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const tagColumns = "id, knowledge_item_id, label, category"

const deleteTagsByItemSQL = `DELETE FROM metadata_tags WHERE knowledge_item_id = $1`

// DeleteByItem removes every tag of an item and returns how many were removed.
func (r *Repo) DeleteByItem(ctx context.Context, itemID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteTagsByItemSQL, itemID)
	if err != nil {
		return 0, postgres.MapError(err, "metadata_tags", itemID)
	}
	return int(tag.RowsAffected()), nil
}

// CreateMany inserts tags in a single multi-row statement and returns the
// stored rows in input order.
func (r *Repo) CreateMany(ctx context.Context, tags []domain.MetadataTag) ([]domain.MetadataTag, error) {
	if len(tags) == 0 {
		return []domain.MetadataTag{}, nil
	}

	insert := postgres.Builder().
		Insert("metadata_tags").
		Columns("id", "knowledge_item_id", "label", "category")
	for _, t := range tags {
		insert = insert.Values(t.ID, t.KnowledgeItemID, t.Label, t.Category)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert metadata_tags: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "metadata_tags", tags[0].KnowledgeItemID)
	}

	out := make([]domain.MetadataTag, len(tags))
	copy(out, tags)
	return out, nil
}

// ListByItem returns the tags of a single item.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.MetadataTag, error) {
	return r.ListByItemIDs(ctx, []uuid.UUID{itemID})
}

// ListByItemIDs returns the tags of several items. Used by the dataloader.
func (r *Repo) ListByItemIDs(ctx context.Context, itemIDs []uuid.UUID) ([]domain.MetadataTag, error) {
	if len(itemIDs) == 0 {
		return []domain.MetadataTag{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(tagColumns).From("metadata_tags").
		Where(squirrel.Eq{"knowledge_item_id": itemIDs}).
		OrderBy("knowledge_item_id", "category", "label").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list metadata_tags: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list metadata_tags: %w", err)
	}

	tags, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetadataTag, error) {
		var t domain.MetadataTag
		err := row.Scan(&t.ID, &t.KnowledgeItemID, &t.Label, &t.Category)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan metadata_tags: %w", err)
	}
	return tags, nil
}
