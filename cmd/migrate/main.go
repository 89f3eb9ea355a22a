// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is "up". Connection settings come from the same
// configuration as the server (DATABASE_DSN or config.yaml).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/knowledge-backend/internal/app"
	"github.com/heartmarshall/knowledge-backend/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [up|down|status]\n\n%s", os.Args[0], config.Usage())
	}
	flag.Parse()
	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	migrator, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Error("open migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer migrator.Close()

	if err := run(ctx, logger, migrator, command); err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, m *postgres.Migrator, command string) error {
	switch command {
	case "up":
		results, err := m.Up(ctx)
		for _, r := range results {
			logger.Info("applied migration", slog.String("source", r.Source.Path), slog.Duration("duration", r.Duration))
		}
		return err
	case "down":
		r, err := m.Down(ctx)
		if r != nil {
			logger.Info("rolled back migration", slog.String("source", r.Source.Path))
		}
		return err
	case "status":
		statuses, err := m.Status(ctx)
		for _, s := range statuses {
			logger.Info("migration",
				slog.String("source", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
		return err
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}
