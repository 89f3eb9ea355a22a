package knowledge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// DeleteItem removes an item with its versions, tags and comments.
// Administrators only.
func (s *Service) DeleteItem(ctx context.Context, caller domain.Caller, id uuid.UUID) error {
	if !caller.Role.IsAdmin() {
		return domain.NewPermissionError("only administrators can delete items")
	}
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.InfoContext(ctx, "knowledge item deleted",
		slog.String("item_id", id.String()),
		slog.String("user_id", caller.ID.String()),
	)
	return nil
}
