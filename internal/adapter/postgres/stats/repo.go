// Package stats implements the aggregate dashboard queries using PostgreSQL.
package stats

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

// Repo runs read-only aggregate queries. Each method is a single statement
// and so sees one consistent snapshot.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stats repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// CountItems returns the number of knowledge items matching the optional
// status and author filters.
func (r *Repo) CountItems(ctx context.Context, status *domain.Status, authorID *uuid.UUID) (int, error) {
	where := squirrel.And{}
	if status != nil {
		where = append(where, squirrel.Eq{"status": int16(*status)})
	}
	if authorID != nil {
		where = append(where, squirrel.Expr("author_id = ?", *authorID))
	}

	sql, args, err := postgres.Builder().Select("count(*)").From("knowledge_items").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count items: %w", err)
	}
	return r.count(ctx, sql, args...)
}

// CountUsers returns the number of users.
func (r *Repo) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, "SELECT count(*) FROM users")
}

// DailyCreated returns per-day item counts for days on or after since (UTC),
// ascending. Days with no items are absent.
func (r *Repo) DailyCreated(ctx context.Context, since time.Time) ([]domain.DayCount, error) {
	sql, args, err := postgres.Builder().
		Select("(created_at AT TIME ZONE 'UTC')::date AS day", "count(*)").
		From("knowledge_items").
		Where(squirrel.GtOrEq{"created_at": since}).
		GroupBy("day").
		OrderBy("day ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build daily created: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("daily created: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DayCount, error) {
		var d domain.DayCount
		err := row.Scan(&d.Date, &d.Count)
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan daily created: %w", err)
	}
	return out, nil
}

// TopCategories returns the tag categories used by the most distinct items,
// highest first, ties broken by category name.
func (r *Repo) TopCategories(ctx context.Context, limit int) ([]domain.CategoryCount, error) {
	sql, args, err := postgres.Builder().
		Select("category", "count(DISTINCT knowledge_item_id) AS items").
		From("metadata_tags").
		Where(squirrel.NotEq{"category": nil}).
		GroupBy("category").
		OrderBy("items DESC", "category ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build top categories: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategoryCount, error) {
		var c domain.CategoryCount
		err := row.Scan(&c.Category, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan top categories: %w", err)
	}
	return out, nil
}

// StatusBreakdown returns item counts grouped by status, by status value.
func (r *Repo) StatusBreakdown(ctx context.Context) ([]domain.StatusCount, error) {
	sql, args, err := postgres.Builder().
		Select("status", "count(*)").
		From("knowledge_items").
		GroupBy("status").
		OrderBy("status ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build status breakdown: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("status breakdown: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StatusCount, error) {
		var (
			c      domain.StatusCount
			status int16
		)
		err := row.Scan(&status, &c.Count)
		c.Status = domain.Status(status)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan status breakdown: %w", err)
	}
	return out, nil
}

func (r *Repo) count(ctx context.Context, sql string, args ...any) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
