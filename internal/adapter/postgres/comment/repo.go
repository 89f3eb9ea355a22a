// Package comment implements the append-only comment repository.
package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	createCommentSQL = `INSERT INTO comments (id, knowledge_item_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, knowledge_item_id, user_id, text, created_at`

	listCommentsSQL = `SELECT c.id, c.knowledge_item_id, c.user_id, c.text, c.created_at,
			u.name, u.email
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.knowledge_item_id = $1
		ORDER BY c.created_at ASC, c.id ASC`
)

// Create inserts a comment.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out domain.Comment
	err := q.QueryRow(ctx, createCommentSQL, c.ID, c.KnowledgeItemID, c.UserID, c.Text, c.CreatedAt).
		Scan(&out.ID, &out.KnowledgeItemID, &out.UserID, &out.Text, &out.CreatedAt)
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, "comment", c.KnowledgeItemID)
	}
	out.CreatedAt = out.CreatedAt.UTC()
	return out, nil
}

// ListByItem returns the comments of an item with their authors, oldest first.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listCommentsSQL, itemID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Comment, error) {
		var (
			c domain.Comment
			u domain.User
		)
		if err := row.Scan(&c.ID, &c.KnowledgeItemID, &c.UserID, &c.Text, &c.CreatedAt, &u.Name, &u.Email); err != nil {
			return domain.Comment{}, err
		}
		u.ID = c.UserID
		c.User = &u
		c.CreatedAt = c.CreatedAt.UTC()
		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan comments: %w", err)
	}
	return comments, nil
}
