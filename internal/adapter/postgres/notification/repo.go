// Package notification implements the notification sink using PostgreSQL.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	listNewestForUserSQL = `SELECT id, type, recipient_id, payload, read_at, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	listOldestForUserSQL = `SELECT id, type, recipient_id, payload, read_at, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at, id
		LIMIT $2`

	countUnreadSQL = `SELECT count(*) FROM notifications WHERE recipient_id = $1 AND read_at IS NULL`

	markAllReadSQL = `UPDATE notifications SET read_at = now() WHERE recipient_id = $1 AND read_at IS NULL`

	deleteAllSQL = `DELETE FROM notifications WHERE recipient_id = $1`

	deleteReadBeforeSQL = `DELETE FROM notifications WHERE read_at IS NOT NULL AND read_at < $1`
)

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateMany inserts all notifications in a single statement. An empty
// slice is a no-op.
func (r *Repo) CreateMany(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	insert := postgres.Builder().
		Insert("notifications").
		Columns("id", "type", "recipient_id", "payload", "created_at")
	for _, n := range ns {
		payload, err := json.Marshal(n.Payload)
		if err != nil {
			return fmt.Errorf("notification marshal payload: %w", err)
		}
		insert = insert.Values(n.ID, string(n.Type), n.RecipientID, payload, n.CreatedAt)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build insert notifications: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "notifications", len(ns))
	}
	return nil
}

// MarkAllRead sets read_at on the user's unread notifications and returns
// how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markAllReadSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteAll removes every notification of the user. Idempotent.
func (r *Repo) DeleteAll(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteAllSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("delete all notifications: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteReadBefore removes read notifications whose read_at precedes before.
func (r *Repo) DeleteReadBefore(ctx context.Context, before time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteReadBeforeSQL, before)
	if err != nil {
		return 0, fmt.Errorf("delete read notifications: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListForUser returns up to limit notifications of the user, newest or
// oldest first.
func (r *Repo) ListForUser(ctx context.Context, userID uuid.UUID, limit int, newestFirst bool) ([]domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := listOldestForUserSQL
	if newestFirst {
		query = listNewestForUserSQL
	}
	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	out, err := pgx.CollectRows(rows, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("scan notifications: %w", err)
	}
	return out, nil
}

// CountUnread returns the number of unread notifications of the user.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countUnreadSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}

func scanNotification(row pgx.CollectableRow) (domain.Notification, error) {
	var (
		n       domain.Notification
		typ     string
		payload []byte
	)
	if err := row.Scan(&n.ID, &typ, &n.RecipientID, &payload, &n.ReadAt, &n.CreatedAt); err != nil {
		return domain.Notification{}, err
	}
	if err := json.Unmarshal(payload, &n.Payload); err != nil {
		return domain.Notification{}, fmt.Errorf("notification %s payload: %w", n.ID, err)
	}
	n.Type = domain.NotificationType(typ)
	n.CreatedAt = n.CreatedAt.UTC()
	return n, nil
}
