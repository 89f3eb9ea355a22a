package knowledge

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// GetItem returns an item with its author, versions (oldest first), tags and
// comments.
func (s *Service) GetItem(ctx context.Context, id uuid.UUID) (*domain.KnowledgeItem, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	author, err := s.users.GetByID(ctx, item.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	item.Author = author

	if item.Versions, err = s.versions.ListByItem(ctx, id); err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	if item.Tags, err = s.tags.ListByItem(ctx, id); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if item.Comments, err = s.comments.ListByItem(ctx, id); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return item, nil
}
