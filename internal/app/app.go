package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/knowledge-backend/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/comment"
	knowledgerepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/knowledge"
	notificationrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/notification"
	rolerepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/role"
	statsrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/stats"
	syslogrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/syslog"
	tagrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/tag"
	userrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/user"
	versionrepo "github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/version"
	"github.com/heartmarshall/knowledge-backend/internal/auth"
	"github.com/heartmarshall/knowledge-backend/internal/config"
	authsvc "github.com/heartmarshall/knowledge-backend/internal/service/auth"
	"github.com/heartmarshall/knowledge-backend/internal/service/dashboard"
	"github.com/heartmarshall/knowledge-backend/internal/service/knowledge"
	"github.com/heartmarshall/knowledge-backend/internal/service/notification"
	"github.com/heartmarshall/knowledge-backend/internal/service/system"
	"github.com/heartmarshall/knowledge-backend/internal/service/user"
	"github.com/heartmarshall/knowledge-backend/internal/transport/dataloader"
	"github.com/heartmarshall/knowledge-backend/internal/transport/middleware"
	"github.com/heartmarshall/knowledge-backend/internal/transport/rest"
	"github.com/heartmarshall/knowledge-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires repositories, services and HTTP handlers, and serves until
// ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(logger, cfg, pool, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// NewHandler builds the full HTTP handler: repositories over pool, services,
// the route table and the request-wide middleware chain.
func NewHandler(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, limiter *middleware.RateLimiter) http.Handler {
	pinger := postgres.NewPinger(pool)
	tx := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	roles := rolerepo.New(pool)
	items := knowledgerepo.New(pool)
	versions := versionrepo.New(pool)
	tags := tagrepo.New(pool)
	comments := commentrepo.New(pool)
	notifications := notificationrepo.New(pool)
	stats := statsrepo.New(pool)
	syslogs := syslogrepo.New(pool)

	schema, err := migrations.Latest()
	if err != nil {
		logger.Warn("schema version check disabled", slog.String("error", err.Error()))
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	authService := authsvc.NewService(logger, users, syslogs, hasher, jwt)
	userService := user.NewService(logger, users, roles, hasher, cfg.Knowledge)
	knowledgeService := knowledge.NewService(logger, items, versions, tags, comments, users, notifications, tx, cfg.Knowledge)
	dashboardService := dashboard.NewService(logger, stats)
	notificationService := notification.NewService(logger, notifications, cfg.Knowledge)
	systemService := system.NewService(logger, pinger, syslogs, cfg.Knowledge)

	router := rest.NewRouter(rest.Handlers{
		Auth:          rest.NewAuthHandler(authService, userService, logger),
		Knowledge:     rest.NewKnowledgeHandler(knowledgeService, logger),
		Dashboard:     rest.NewDashboardHandler(dashboardService, logger),
		Notifications: rest.NewNotificationHandler(notificationService, logger),
		Users:         rest.NewUserHandler(userService, logger),
		System:        rest.NewSystemHandler(systemService, logger),
		Health:        rest.NewHealthHandler(pinger, schema, BuildVersion()),
	}, rest.NewAuthenticator(userService, logger), rest.RouterOptions{
		LoginLimit: limiter.Limit(cfg.RateLimit.LoginPerMinute),
		Loaders:    dataloader.Middleware(&dataloader.Repos{User: users, Tag: tags}),
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(router)
}
