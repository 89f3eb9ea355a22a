package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// CreateItem creates a draft item authored by the caller, together with its
// first version and its tags, in one transaction.
func (s *Service) CreateItem(ctx context.Context, caller domain.Caller, input CreateItemInput) (*domain.KnowledgeItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := &domain.KnowledgeItem{
		ID:          uuid.New(),
		AuthorID:    caller.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      domain.StatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.KnowledgeItem
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.items.Create(ctx, item)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}

		v, err := s.versions.Create(ctx, domain.Version{
			ID:              uuid.New(),
			KnowledgeItemID: created.ID,
			VersionNumber:   domain.InitialVersion.String(),
			CreatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("create version: %w", err)
		}
		created.Versions = []domain.Version{v}

		created.Tags, err = s.insertTags(ctx, created.ID, input.Tags)
		return err
	})
	if err != nil {
		return nil, domain.WrapTx("create knowledge item", err)
	}

	created.Author = authorOf(caller)

	s.log.InfoContext(ctx, "knowledge item created",
		slog.String("item_id", created.ID.String()),
		slog.String("author_id", caller.ID.String()),
		slog.Int("tags", len(created.Tags)),
	)

	return created, nil
}
