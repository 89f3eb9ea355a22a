// Package user implements user administration, roles, profile maintenance
// and caller resolution.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/config"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg user . userRepo
//go:generate moq -out role_repo_mock_test.go -pkg user . roleRepo
//go:generate moq -out password_hasher_mock_test.go -pkg user . passwordHasher

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, int, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, name, email string, roleID uuid.UUID) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// roleRepo defines the role repository interface needed by user service.
type roleRepo interface {
	List(ctx context.Context) ([]domain.RoleRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RoleRecord, error)
	GetByName(ctx context.Context, name domain.Role) (*domain.RoleRecord, error)
	Create(ctx context.Context, role domain.RoleRecord) (*domain.RoleRecord, error)
	Rename(ctx context.Context, id uuid.UUID, name domain.Role) (*domain.RoleRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) (bool, error)
}

// Service implements user, role and profile operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	roles    roleRepo
	hasher   passwordHasher
	pageSize int
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	roles roleRepo,
	hasher passwordHasher,
	cfg config.KnowledgeConfig,
) *Service {
	pageSize := cfg.UserPageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		roles:    roles,
		hasher:   hasher,
		pageSize: pageSize,
	}
}

func requireAdmin(caller domain.Caller) error {
	if !caller.Role.IsAdmin() {
		return domain.NewPermissionError("administrator role required")
	}
	return nil
}
