package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
	"github.com/heartmarshall/knowledge-backend/internal/service/knowledge"
	"github.com/heartmarshall/knowledge-backend/internal/transport/dataloader"
)

type knowledgeService interface {
	ListItems(ctx context.Context, input knowledge.ListItemsInput) (*domain.ItemPage, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.KnowledgeItem, error)
	CreateItem(ctx context.Context, caller domain.Caller, input knowledge.CreateItemInput) (*domain.KnowledgeItem, error)
	UpdateItem(ctx context.Context, caller domain.Caller, input knowledge.UpdateItemInput) (*knowledge.UpdateItemResult, error)
	DeleteItem(ctx context.Context, caller domain.Caller, id uuid.UUID) error
	ChangeStatus(ctx context.Context, caller domain.Caller, input knowledge.ChangeStatusInput) (*knowledge.ChangeStatusResult, error)
	AddComment(ctx context.Context, caller domain.Caller, input knowledge.AddCommentInput) (*domain.Comment, error)
}

// KnowledgeHandler serves the knowledge item endpoints.
type KnowledgeHandler struct {
	svc knowledgeService
	log *slog.Logger
}

// NewKnowledgeHandler creates a KnowledgeHandler.
func NewKnowledgeHandler(svc knowledgeService, logger *slog.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{svc: svc, log: logger.With("handler", "knowledge")}
}

type itemRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tags        json.RawMessage `json:"tags"`
}

type statusRequest struct {
	Status *int `json:"status"`
}

type commentRequest struct {
	Text string `json:"text"`
}

type itemListResponse struct {
	Items []itemResponse `json:"data"`
	pageResponse
}

// List handles GET /api/knowledge?status=&search=&page=&per_page=. Authors and
// tags of the page are batch-loaded through the request's dataloaders.
func (h *KnowledgeHandler) List(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
	input := knowledge.ListItemsInput{Search: r.URL.Query().Get("search")}

	var err error
	if input.Page, err = queryInt(r, "page"); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if input.PerPage, err = queryInt(r, "per_page"); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if r.URL.Query().Has("status") {
		n, err := queryInt(r, "status")
		if err != nil {
			respondError(h.log, w, r, err)
			return
		}
		st := domain.Status(n)
		input.Status = &st
	}

	page, err := h.svc.ListItems(r.Context(), input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if err := dataloader.Attach(r.Context(), page.Items); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := itemListResponse{Items: make([]itemResponse, len(page.Items)), pageResponse: toPage(page.PageMeta)}
	for i := range page.Items {
		resp.Items[i] = toItem(&page.Items[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/knowledge/:id.
func (h *KnowledgeHandler) Get(w http.ResponseWriter, r *http.Request, _ domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItem(item))
}

// Create handles POST /api/knowledge.
func (h *KnowledgeHandler) Create(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	var req itemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	input := knowledge.CreateItemInput{Title: req.Title, Description: req.Description}
	tags, err := decodeTags(req.Tags)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	if tags != nil {
		input.Tags = *tags
	}

	item, err := h.svc.CreateItem(r.Context(), caller, input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItem(item))
}

// Update handles PUT /api/knowledge/:id. Omitting "tags" keeps the current
// tags, an empty array clears them and null is rejected.
func (h *KnowledgeHandler) Update(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req itemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	input := knowledge.UpdateItemInput{ItemID: id, Title: req.Title, Description: req.Description}
	var err error
	if input.Tags, err = decodeTags(req.Tags); err != nil {
		respondError(h.log, w, r, err)
		return
	}

	result, err := h.svc.UpdateItem(r.Context(), caller, input)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Version string       `json:"version"`
		Item    itemResponse `json:"item"`
	}{result.Version, toItem(result.Item)})
}

// Delete handles DELETE /api/knowledge/:id.
func (h *KnowledgeHandler) Delete(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteItem(r.Context(), caller, id); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ChangeStatus handles POST /api/knowledge/:id/status.
func (h *KnowledgeHandler) ChangeStatus(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Status == nil {
		respondError(h.log, w, r, domain.NewValidationError("status", "required"))
		return
	}

	result, err := h.svc.ChangeStatus(r.Context(), caller, knowledge.ChangeStatusInput{
		ItemID: id,
		Status: domain.Status(*req.Status),
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"new_status":   int(result.Status),
		"status_label": result.Status.String(),
		"notified":     result.Notified,
	})
}

// AddComment handles POST /api/knowledge/:id/comments.
func (h *KnowledgeHandler) AddComment(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.AddComment(r.Context(), caller, knowledge.AddCommentInput{ItemID: id, Text: req.Text})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toComment(c))
}
