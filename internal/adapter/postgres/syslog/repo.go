// Package syslog implements append-only system logs (health checks and
// logins) using PostgreSQL.
package syslog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// Repo provides system log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new system log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	createHealthLogSQL = `INSERT INTO system_health_logs (id, monitored_by_id, status, created_at)
		VALUES ($1, $2, $3, $4)`

	listHealthLogsSQL = `SELECT h.id, h.monitored_by_id, h.status, h.created_at, u.name, u.email
		FROM system_health_logs h
		LEFT JOIN users u ON u.id = h.monitored_by_id
		ORDER BY h.created_at DESC, h.id
		LIMIT $1`

	createLoginLogSQL = `INSERT INTO login_logs (id, user_id, login_time) VALUES ($1, $2, $3)`

	listLoginLogsSQL = `SELECT l.id, l.user_id, l.login_time, u.name, u.email
		FROM login_logs l
		JOIN users u ON u.id = l.user_id
		ORDER BY l.login_time DESC, l.id
		LIMIT $1`
)

// ---------------------------------------------------------------------------
// Health logs
// ---------------------------------------------------------------------------

// CreateHealthLog appends a health check result.
func (r *Repo) CreateHealthLog(ctx context.Context, l domain.SystemHealthLog) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, createHealthLogSQL, l.ID, l.MonitoredByID, int16(l.Status), l.CreatedAt); err != nil {
		return postgres.MapError(err, "system_health_log", l.ID)
	}
	return nil
}

// ListHealthLogs returns the newest health logs with the monitoring user.
func (r *Repo) ListHealthLogs(ctx context.Context, limit int) ([]domain.SystemHealthLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listHealthLogsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list system_health_logs: %w", err)
	}

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SystemHealthLog, error) {
		var (
			l      domain.SystemHealthLog
			status int16
			name   *string
			email  *string
		)
		if err := row.Scan(&l.ID, &l.MonitoredByID, &status, &l.CreatedAt, &name, &email); err != nil {
			return domain.SystemHealthLog{}, err
		}
		l.Status = domain.HealthStatus(status)
		l.CreatedAt = l.CreatedAt.UTC()
		if l.MonitoredByID != nil && name != nil {
			l.Monitor = &domain.User{ID: *l.MonitoredByID, Name: *name, Email: deref(email)}
		}
		return l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan system_health_logs: %w", err)
	}
	return logs, nil
}

// ---------------------------------------------------------------------------
// Login logs
// ---------------------------------------------------------------------------

// CreateLoginLog appends a successful login.
func (r *Repo) CreateLoginLog(ctx context.Context, l domain.LoginLog) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, createLoginLogSQL, l.ID, l.UserID, l.LoginTime); err != nil {
		return postgres.MapError(err, "login_log", l.UserID)
	}
	return nil
}

// ListLoginLogs returns the newest logins with their users.
func (r *Repo) ListLoginLogs(ctx context.Context, limit int) ([]domain.LoginLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listLoginLogsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list login_logs: %w", err)
	}

	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LoginLog, error) {
		var (
			l domain.LoginLog
			u domain.User
		)
		if err := row.Scan(&l.ID, &l.UserID, &l.LoginTime, &u.Name, &u.Email); err != nil {
			return domain.LoginLog{}, err
		}
		u.ID = l.UserID
		l.User = &u
		l.LoginTime = l.LoginTime.UTC()
		return l, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan login_logs: %w", err)
	}
	return logs, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
