package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
	"github.com/heartmarshall/knowledge-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context, caller domain.Caller, limit int, newestFirst bool) (*notification.Inbox, error)
	MarkAllRead(ctx context.Context, caller domain.Caller) (int, error)
	DeleteAll(ctx context.Context, caller domain.Caller) (int, error)
}

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// List handles GET /api/notifications?limit=&order=. Order is "newest" (the
// default) or "oldest".
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	var newestFirst bool
	switch r.URL.Query().Get("order") {
	case "", "newest":
		newestFirst = true
	case "oldest":
	default:
		respondError(h.log, w, r, domain.NewValidationError("order", "must be newest or oldest"))
		return
	}
	inbox, err := h.svc.List(r.Context(), caller, limit, newestFirst)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	items := make([]notificationResponse, len(inbox.Notifications))
	for i, n := range inbox.Notifications {
		items[i] = toNotification(n)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": items, "unread": inbox.Unread})
}

// MarkAllRead handles POST /api/notifications/read.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	n, err := h.svc.MarkAllRead(r.Context(), caller)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": n})
}

// DeleteAll handles DELETE /api/notifications.
func (h *NotificationHandler) DeleteAll(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	n, err := h.svc.DeleteAll(r.Context(), caller)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
}
