package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// ChangeStatus moves an item to a new workflow status and notifies the
// affected users. The status write and the notification rows commit together.
//
// Administrators and managers may set any status on any item. Other callers
// may only change the status of their own items, and never to Published.
// Transitions are not ordered: any status may follow any other.
func (s *Service) ChangeStatus(ctx context.Context, caller domain.Caller, input ChangeStatusInput) (*ChangeStatusResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var notified int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Concurrent transitions on the same item serialize on the row lock;
		// the last one to commit wins.
		item, err := s.items.GetByIDForUpdate(ctx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if err := authorizeStatusChange(caller, item, input.Status); err != nil {
			return err
		}

		if err := s.items.UpdateStatus(ctx, item.ID, input.Status); err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		ns, err := s.statusNotifications(ctx, caller, item, input.Status)
		if err != nil {
			return err
		}
		if len(ns) == 0 {
			return nil
		}
		if err := s.notifications.CreateMany(ctx, ns); err != nil {
			return fmt.Errorf("create notifications: %w", err)
		}
		notified = len(ns)
		return nil
	})
	if err != nil {
		return nil, domain.WrapTx("change knowledge item status", err)
	}

	s.log.InfoContext(ctx, "knowledge item status changed",
		slog.String("item_id", input.ItemID.String()),
		slog.String("user_id", caller.ID.String()),
		slog.String("status", input.Status.String()),
		slog.Int("notified", notified),
	)

	return &ChangeStatusResult{Status: input.Status, Notified: notified}, nil
}

func authorizeStatusChange(caller domain.Caller, item *domain.KnowledgeItem, to domain.Status) error {
	if caller.Role.IsPrivilegedReviewer() {
		return nil
	}
	if !caller.IsAuthorOf(item) {
		return domain.NewPermissionError("you can only change the status of your own items")
	}
	if to == domain.StatusPublished {
		return domain.NewPermissionError("only administrators or managers can publish")
	}
	return nil
}

// statusNotifications computes one notification per recipient of a transition:
// reviewers on submission, everyone on publication, the author on return to draft.
// The caller is never a recipient.
func (s *Service) statusNotifications(
	ctx context.Context,
	caller domain.Caller,
	item *domain.KnowledgeItem,
	to domain.Status,
) ([]domain.Notification, error) {
	var (
		recipients []uuid.UUID
		typ        domain.NotificationType
		message    string
		err        error
	)

	switch to {
	case domain.StatusPendingReview:
		typ = domain.NotificationReviewRequested
		message = fmt.Sprintf("Review Required: %s submitted \"%s\"", caller.Name, item.Title)
		recipients, err = s.users.ListIDsByRoles(ctx, domain.PrivilegedReviewerRoles(), caller.ID)
		if err != nil {
			return nil, fmt.Errorf("list reviewers: %w", err)
		}
	case domain.StatusPublished:
		typ = domain.NotificationItemPublished
		message = "New Article Published: " + item.Title
		recipients, err = s.users.ListIDsExcept(ctx, caller.ID)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
	case domain.StatusDraft:
		typ = domain.NotificationReturnedToDraft
		message = fmt.Sprintf("Your submission \"%s\" was returned to draft.", item.Title)
		if item.AuthorID != caller.ID {
			recipients = []uuid.UUID{item.AuthorID}
		}
	}

	return buildNotifications(recipients, typ, domain.NotificationPayload{
		Message:    message,
		Link:       domain.ItemLink(item.ID),
		DocumentID: item.ID,
	}, time.Now().UTC()), nil
}

func buildNotifications(
	recipients []uuid.UUID,
	typ domain.NotificationType,
	payload domain.NotificationPayload,
	at time.Time,
) []domain.Notification {
	if len(recipients) == 0 {
		return nil
	}
	ns := make([]domain.Notification, 0, len(recipients))
	for _, id := range recipients {
		ns = append(ns, domain.Notification{
			ID:          uuid.New(),
			Type:        typ,
			RecipientID: id,
			Payload:     payload,
			CreatedAt:   at,
		})
	}
	return ns
}
