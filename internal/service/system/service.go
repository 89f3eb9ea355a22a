// Package system implements the administrator health check and the audit
// log views.
package system

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/config"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

//go:generate moq -out pinger_mock_test.go -pkg system . pinger
//go:generate moq -out syslog_repo_mock_test.go -pkg system . syslogRepo

const pingTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

type syslogRepo interface {
	CreateHealthLog(ctx context.Context, l domain.SystemHealthLog) error
	ListHealthLogs(ctx context.Context, limit int) ([]domain.SystemHealthLog, error)
	ListLoginLogs(ctx context.Context, limit int) ([]domain.LoginLog, error)
}

// Service implements health checks and log listings.
type Service struct {
	log  *slog.Logger
	db   pinger
	logs syslogRepo
	cfg  config.KnowledgeConfig
}

// NewService creates a new system service.
func NewService(logger *slog.Logger, db pinger, logs syslogRepo, cfg config.KnowledgeConfig) *Service {
	return &Service{
		log:  logger.With("service", "system"),
		db:   db,
		logs: logs,
		cfg:  cfg,
	}
}

// HealthResult is the outcome of one health check.
type HealthResult struct {
	Status domain.HealthStatus
	Label  string
	Log    domain.SystemHealthLog
}

// HealthCheck pings the database and records the outcome (administrators
// only). An unreachable database is a result, not an error; the error return
// is reserved for failing to record it.
func (s *Service) HealthCheck(ctx context.Context, caller domain.Caller) (*HealthResult, error) {
	if !caller.Role.IsAdmin() {
		return nil, domain.NewPermissionError("administrator role required")
	}

	status := domain.HealthHealthy
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	if err := s.db.Ping(pingCtx); err != nil {
		status = domain.HealthIssues
		s.log.WarnContext(ctx, "health check: database unreachable", slog.String("error", err.Error()))
	}
	cancel()

	monitor := caller.ID
	entry := domain.SystemHealthLog{
		ID:            uuid.New(),
		MonitoredByID: &monitor,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.logs.CreateHealthLog(ctx, entry); err != nil {
		return nil, fmt.Errorf("record health check: %w", err)
	}

	s.log.InfoContext(ctx, "health check recorded",
		slog.String("user_id", caller.ID.String()),
		slog.String("status", status.Label()),
	)

	return &HealthResult{Status: status, Label: status.Label(), Log: entry}, nil
}

// ListHealthLogs returns the latest health checks with their monitors
// (administrators only).
func (s *Service) ListHealthLogs(ctx context.Context, caller domain.Caller) ([]domain.SystemHealthLog, error) {
	if !caller.Role.IsAdmin() {
		return nil, domain.NewPermissionError("administrator role required")
	}
	out, err := s.logs.ListHealthLogs(ctx, limitOr(s.cfg.HealthLogLimit, 20))
	if err != nil {
		return nil, fmt.Errorf("list health logs: %w", err)
	}
	return out, nil
}

// ListLoginLogs returns the latest logins with their users (administrators only).
func (s *Service) ListLoginLogs(ctx context.Context, caller domain.Caller) ([]domain.LoginLog, error) {
	if !caller.Role.IsAdmin() {
		return nil, domain.NewPermissionError("administrator role required")
	}
	out, err := s.logs.ListLoginLogs(ctx, limitOr(s.cfg.LoginLogLimit, 50))
	if err != nil {
		return nil, fmt.Errorf("list login logs: %w", err)
	}
	return out, nil
}

func limitOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
