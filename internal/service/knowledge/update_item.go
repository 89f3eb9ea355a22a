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

// UpdateItem edits title and description, appends the next version and,
// when input.Tags is set, replaces the tag set. Only the author or an
// administrator may edit. The status is never changed here.
func (s *Service) UpdateItem(ctx context.Context, caller domain.Caller, input UpdateItemInput) (*UpdateItemResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result UpdateItemResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// The row lock keeps concurrent edits from computing the same version.
		current, err := s.items.GetByIDForUpdate(ctx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if !caller.IsAuthorOf(current) && !caller.Role.IsAdmin() {
			return domain.NewPermissionError("only the author or an administrator can edit this item")
		}

		updated, err := s.items.UpdateContent(ctx, input.ItemID, strings.TrimSpace(input.Title), input.Description)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		latest, err := s.versions.Latest(ctx, input.ItemID)
		if err != nil {
			return fmt.Errorf("latest version: %w", err)
		}
		next, err := domain.NextVersionLabel(latest)
		if err != nil {
			return fmt.Errorf("next version: %w", err)
		}
		if _, err := s.versions.Create(ctx, domain.Version{
			ID:              uuid.New(),
			KnowledgeItemID: input.ItemID,
			VersionNumber:   next,
			CreatedAt:       time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("create version: %w", err)
		}

		if input.Tags != nil {
			updated.Tags, err = s.replaceTags(ctx, input.ItemID, *input.Tags)
		} else {
			updated.Tags, err = s.tags.ListByItem(ctx, input.ItemID)
			if err != nil {
				err = fmt.Errorf("list tags: %w", err)
			}
		}
		if err != nil {
			return err
		}

		result = UpdateItemResult{Version: next, Item: updated}
		return nil
	})
	if err != nil {
		return nil, domain.WrapTx("update knowledge item", err)
	}

	s.log.InfoContext(ctx, "knowledge item updated",
		slog.String("item_id", input.ItemID.String()),
		slog.String("user_id", caller.ID.String()),
		slog.String("version", result.Version),
		slog.Bool("tags_replaced", input.Tags != nil),
	)

	return &result, nil
}
