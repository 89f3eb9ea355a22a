// Package knowledge implements the knowledge item workflow: authoring,
// versioning, tagging, status transitions and the notifications they fan out.
package knowledge

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/config"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

//go:generate moq -out item_repo_mock_test.go -pkg knowledge . itemRepo
//go:generate moq -out version_repo_mock_test.go -pkg knowledge . versionRepo
//go:generate moq -out tag_repo_mock_test.go -pkg knowledge . tagRepo
//go:generate moq -out comment_repo_mock_test.go -pkg knowledge . commentRepo
//go:generate moq -out user_repo_mock_test.go -pkg knowledge . userRepo
//go:generate moq -out notification_repo_mock_test.go -pkg knowledge . notificationRepo
//go:generate moq -out tx_manager_mock_test.go -pkg knowledge . txManager

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.KnowledgeItem, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.KnowledgeItem, error)
	List(ctx context.Context, f domain.ItemFilter) ([]domain.KnowledgeItem, int, error)
	Create(ctx context.Context, item *domain.KnowledgeItem) (*domain.KnowledgeItem, error)
	UpdateContent(ctx context.Context, id uuid.UUID, title, description string) (*domain.KnowledgeItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type versionRepo interface {
	Create(ctx context.Context, v domain.Version) (domain.Version, error)
	Latest(ctx context.Context, itemID uuid.UUID) (string, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Version, error)
}

type tagRepo interface {
	DeleteByItem(ctx context.Context, itemID uuid.UUID) (int, error)
	CreateMany(ctx context.Context, tags []domain.MetadataTag) ([]domain.MetadataTag, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.MetadataTag, error)
}

type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Comment, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListIDsByRoles(ctx context.Context, roles []domain.Role, exclude uuid.UUID) ([]uuid.UUID, error)
	ListIDsExcept(ctx context.Context, exclude uuid.UUID) ([]uuid.UUID, error)
}

type notificationRepo interface {
	CreateMany(ctx context.Context, ns []domain.Notification) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements knowledge item operations.
type Service struct {
	log           *slog.Logger
	items         itemRepo
	versions      versionRepo
	tags          tagRepo
	comments      commentRepo
	users         userRepo
	notifications notificationRepo
	tx            txManager
	cfg           config.KnowledgeConfig
}

// NewService creates a new knowledge service.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	versions versionRepo,
	tags tagRepo,
	comments commentRepo,
	users userRepo,
	notifications notificationRepo,
	tx txManager,
	cfg config.KnowledgeConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "knowledge"),
		items:         items,
		versions:      versions,
		tags:          tags,
		comments:      comments,
		users:         users,
		notifications: notifications,
		tx:            tx,
		cfg:           cfg,
	}
}

// authorOf builds the author view of the caller without a store round-trip.
func authorOf(caller domain.Caller) *domain.User {
	return &domain.User{ID: caller.ID, Name: caller.Name, Role: caller.Role}
}
