package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// buildTags turns caller-supplied tags into rows for itemID. Labels and
// categories are trimmed; a blank category becomes the default one.
func buildTags(itemID uuid.UUID, in []domain.TagInput) []domain.MetadataTag {
	out := make([]domain.MetadataTag, 0, len(in))
	for _, t := range in {
		var category *string
		if t.Category != nil {
			c := strings.TrimSpace(*t.Category)
			category = &c
		}
		out = append(out, domain.MetadataTag{
			ID:              uuid.New(),
			KnowledgeItemID: itemID,
			Label:           strings.TrimSpace(t.Label),
			Category:        domain.TagInput{Category: category}.CategoryOrDefault(),
		})
	}
	return out
}

// insertTags writes the tag set of a freshly created item. Must run inside
// the caller's transaction.
func (s *Service) insertTags(ctx context.Context, itemID uuid.UUID, in []domain.TagInput) ([]domain.MetadataTag, error) {
	if len(in) == 0 {
		return []domain.MetadataTag{}, nil
	}
	created, err := s.tags.CreateMany(ctx, buildTags(itemID, in))
	if err != nil {
		return nil, fmt.Errorf("create tags: %w", err)
	}
	return created, nil
}

// replaceTags deletes every tag of the item and inserts the new set in one
// statement. Tag identity is not preserved. Must run inside the caller's
// transaction.
func (s *Service) replaceTags(ctx context.Context, itemID uuid.UUID, in []domain.TagInput) ([]domain.MetadataTag, error) {
	if _, err := s.tags.DeleteByItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf("delete tags: %w", err)
	}
	return s.insertTags(ctx, itemID, in)
}
