// Package notification serves a user's notification inbox.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/config"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

//go:generate moq -out notification_repo_mock_test.go -pkg notification . notificationRepo

type notificationRepo interface {
	ListForUser(ctx context.Context, userID uuid.UUID, limit int, newestFirst bool) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteAll(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteReadBefore(ctx context.Context, before time.Time) (int, error)
}

const maxListLimit = 100

// Service implements notification inbox operations.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	cfg           config.KnowledgeConfig
	now           func() time.Time
}

// NewService creates a new notification service.
func NewService(logger *slog.Logger, notifications notificationRepo, cfg config.KnowledgeConfig) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		cfg:           cfg,
		now:           time.Now,
	}
}

// Inbox is one page of a user's notifications plus the unread total.
type Inbox struct {
	Notifications []domain.Notification
	Unread        int
}

// List returns the caller's notifications, newest first unless newestFirst is
// false. A non-positive limit uses the configured default.
func (s *Service) List(ctx context.Context, caller domain.Caller, limit int, newestFirst bool) (*Inbox, error) {
	if limit <= 0 {
		limit = s.cfg.NotificationLimit
	}
	limit = min(limit, maxListLimit)

	ns, err := s.notifications.ListForUser(ctx, caller.ID, limit, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	unread, err := s.notifications.CountUnread(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}
	if ns == nil {
		ns = []domain.Notification{}
	}
	return &Inbox{Notifications: ns, Unread: unread}, nil
}

// MarkAllRead marks every unread notification of the caller as read.
func (s *Service) MarkAllRead(ctx context.Context, caller domain.Caller) (int, error) {
	n, err := s.notifications.MarkAllRead(ctx, caller.ID)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}
	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", caller.ID.String()),
		slog.Int("count", n),
	)
	return n, nil
}

// DeleteAll removes every notification of the caller.
func (s *Service) DeleteAll(ctx context.Context, caller domain.Caller) (int, error) {
	n, err := s.notifications.DeleteAll(ctx, caller.ID)
	if err != nil {
		return 0, fmt.Errorf("delete notifications: %w", err)
	}
	s.log.InfoContext(ctx, "notifications deleted",
		slog.String("user_id", caller.ID.String()),
		slog.Int("count", n),
	)
	return n, nil
}

// Cleanup deletes read notifications older than the retention window.
func (s *Service) Cleanup(ctx context.Context) (int, error) {
	days := s.cfg.NotificationRetentDays
	if days <= 0 {
		return 0, domain.NewValidationError("notification_retent_days", "must be positive")
	}
	cutoff := s.now().UTC().AddDate(0, 0, -days)

	n, err := s.notifications.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup notifications: %w", err)
	}
	s.log.InfoContext(ctx, "read notifications purged",
		slog.Int("count", n),
		slog.Time("before", cutoff),
	)
	return n, nil
}
