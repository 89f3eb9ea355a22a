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

// AddComment appends a comment by the caller to an existing item.
func (s *Service) AddComment(ctx context.Context, caller domain.Caller, input AddCommentInput) (*domain.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.items.GetByID(ctx, input.ItemID); err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	c, err := s.comments.Create(ctx, domain.Comment{
		ID:              uuid.New(),
		KnowledgeItemID: input.ItemID,
		UserID:          caller.ID,
		Text:            strings.TrimSpace(input.Text),
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	c.User = authorOf(caller)

	s.log.InfoContext(ctx, "comment added",
		slog.String("item_id", input.ItemID.String()),
		slog.String("user_id", caller.ID.String()),
	)
	return &c, nil
}
