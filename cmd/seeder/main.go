// Command seeder creates one demo account per built-in role and a set of
// sample knowledge items in various workflow states. It is intended for
// development databases, not production.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (users, items; default: all)
//	--dry-run        report what would be created without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/comment"
	knowledgerepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/knowledge"
	notificationrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/notification"
	rolerepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/role"
	tagrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/tag"
	userrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/user"
	versionrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/version"
	"github.com/heartmarshall/knowledge-backend/internal/app"
	"github.com/heartmarshall/knowledge-backend/internal/app/seeder"
	"github.com/heartmarshall/knowledge-backend/internal/auth"
	"github.com/heartmarshall/knowledge-backend/internal/config"
	"github.com/heartmarshall/knowledge-backend/internal/service/knowledge"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "report without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	items := knowledge.NewService(logger,
		knowledgerepo.New(pool),
		versionrepo.New(pool),
		tagrepo.New(pool),
		commentrepo.New(pool),
		users,
		notificationrepo.New(pool),
		postgres.NewTxManager(pool),
		appCfg.Knowledge,
	)

	pipeline := seeder.NewPipeline(logger, seeder.Deps{
		Roles:  rolerepo.New(pool),
		Users:  users,
		Hasher: auth.NewPasswordHasher(appCfg.Auth.BcryptCost),
		Items:  items,
	}, *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var inserted, skipped int
	for _, r := range pipeline.Results() {
		inserted += r.Inserted
		skipped += r.Skipped
	}
	logger.Info("pipeline completed successfully",
		slog.Int("inserted", inserted),
		slog.Int("skipped", skipped),
		slog.Bool("dry_run", seederCfg.DryRun),
	)
}
