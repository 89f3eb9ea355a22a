// Package dashboard computes the aggregate statistics shown on the dashboard.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

//go:generate moq -out stats_repo_mock_test.go -pkg dashboard . statsRepo

const (
	// trendDays is the length of the creation trend, today included.
	trendDays = 7
	// topCategories is the number of categories in the bar chart.
	topCategories = 5
)

type statsRepo interface {
	CountItems(ctx context.Context, status *domain.Status, authorID *uuid.UUID) (int, error)
	CountUsers(ctx context.Context) (int, error)
	DailyCreated(ctx context.Context, since time.Time) ([]domain.DayCount, error)
	TopCategories(ctx context.Context, limit int) ([]domain.CategoryCount, error)
	StatusBreakdown(ctx context.Context) ([]domain.StatusCount, error)
}

// Service implements the dashboard aggregate reporter.
type Service struct {
	log   *slog.Logger
	stats statsRepo
	now   func() time.Time
}

// NewService creates a new dashboard service.
func NewService(logger *slog.Logger, stats statsRepo) *Service {
	return &Service{
		log:   logger.With("service", "dashboard"),
		stats: stats,
		now:   time.Now,
	}
}

// Stats returns the dashboard aggregates for caller. Each figure is read by
// its own query; the figures are not a single snapshot.
func (s *Service) Stats(ctx context.Context, caller domain.Caller) (*domain.DashboardStats, error) {
	var (
		out      domain.DashboardStats
		draft    = domain.StatusDraft
		pending  = domain.StatusPendingReview
		authorID = caller.ID
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.TotalDocs, err = s.stats.CountItems(gctx, nil, nil)
		return wrap("total docs", err)
	})
	g.Go(func() (err error) {
		out.MyDrafts, err = s.stats.CountItems(gctx, &draft, &authorID)
		return wrap("my drafts", err)
	})
	g.Go(func() (err error) {
		out.PendingReviews, err = s.stats.CountItems(gctx, &pending, nil)
		return wrap("pending reviews", err)
	})
	g.Go(func() (err error) {
		out.TotalUsers, err = s.stats.CountUsers(gctx)
		return wrap("total users", err)
	})
	g.Go(func() (err error) {
		out.Line, err = s.stats.DailyCreated(gctx, trendStart(s.now()))
		return wrap("daily created", err)
	})
	g.Go(func() (err error) {
		out.Bar, err = s.stats.TopCategories(gctx, topCategories)
		return wrap("top categories", err)
	})
	g.Go(func() (err error) {
		out.Pie, err = s.stats.StatusBreakdown(gctx)
		return wrap("status breakdown", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if out.Line == nil {
		out.Line = []domain.DayCount{}
	}
	if out.Bar == nil {
		out.Bar = []domain.CategoryCount{}
	}
	if out.Pie == nil {
		out.Pie = []domain.StatusCount{}
	}

	s.log.DebugContext(ctx, "dashboard stats computed",
		slog.String("user_id", caller.ID.String()),
		slog.Int("total_docs", out.TotalDocs),
	)

	return &out, nil
}

// trendStart returns UTC midnight of the first day of the trend window.
func trendStart(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(trendDays - 1))
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("dashboard %s: %w", what, err)
	}
	return nil
}
