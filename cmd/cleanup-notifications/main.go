// Command cleanup-notifications deletes read notifications older than the
// configured retention period (KNOWLEDGE_NOTIFICATION_RETENT_DAYS). It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	notificationrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/knowledge-backend/internal/app"
	"github.com/heartmarshall/knowledge-backend/internal/config"
	"github.com/heartmarshall/knowledge-backend/internal/service/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := notification.NewService(logger, notificationrepo.New(pool), cfg.Knowledge)

	deleted, err := svc.Cleanup(ctx)
	if err != nil {
		logger.Error("notification cleanup failed",
			slog.String("error", err.Error()),
			slog.Int("retention_days", cfg.Knowledge.NotificationRetentDays),
		)
		os.Exit(1)
	}

	logger.Info("notification cleanup completed",
		slog.Int("deleted", deleted),
		slog.Int("retention_days", cfg.Knowledge.NotificationRetentDays),
	)
}
