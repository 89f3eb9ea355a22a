package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
	"github.com/heartmarshall/knowledge-backend/internal/service/user"
)

type userService interface {
	ListUsers(ctx context.Context, caller domain.Caller, search string, page int) (*domain.UserPage, error)
	GetUser(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.User, error)
	CreateUser(ctx context.Context, caller domain.Caller, input user.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, caller domain.Caller, input user.UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, caller domain.Caller, id uuid.UUID) error

	ListRoles(ctx context.Context, caller domain.Caller) ([]domain.RoleRecord, error)
	GetRole(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.RoleRecord, error)
	CreateRole(ctx context.Context, caller domain.Caller, input user.RoleInput) (*domain.RoleRecord, error)
	UpdateRole(ctx context.Context, caller domain.Caller, id uuid.UUID, input user.RoleInput) (*domain.RoleRecord, error)
	DeleteRole(ctx context.Context, caller domain.Caller, id uuid.UUID) error

	UpdateInfo(ctx context.Context, caller domain.Caller, input user.UpdateInfoInput) (*domain.User, error)
	UpdatePassword(ctx context.Context, caller domain.Caller, input user.UpdatePasswordInput) error
}

// UserHandler serves user administration, roles and the caller's profile.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type userRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	RoleID   uuid.UUID `json:"role_id"`
}

type roleRequest struct {
	Name string `json:"name"`
}

type passwordRequest struct {
	Current      string `json:"current_password"`
	New          string `json:"password"`
	Confirmation string `json:"password_confirmation"`
}

// ListUsers handles GET /api/users?search=&page=.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	page, err := queryInt(r, "page")
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	result, err := h.svc.ListUsers(r.Context(), caller, r.URL.Query().Get("search"), page)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	users := make([]userResponse, len(result.Users))
	for i := range result.Users {
		users[i] = toUser(&result.Users[i])
	}
	writeJSON(w, http.StatusOK, struct {
		Users []userResponse `json:"data"`
		pageResponse
	}{users, toPage(result.PageMeta)})
}

// GetUser handles GET /api/users/:id.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u, err := h.svc.GetUser(r.Context(), caller, id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	var req userRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.svc.CreateUser(r.Context(), caller, user.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUser(u))
}

// UpdateUser handles PUT /api/users/:id.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req userRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.svc.UpdateUser(r.Context(), caller, user.UpdateUserInput{
		UserID: id,
		Name:   req.Name,
		Email:  req.Email,
		RoleID: req.RoleID,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// DeleteUser handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteUser(r.Context(), caller, id); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListRoles handles GET /api/roles.
func (h *UserHandler) ListRoles(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	roles, err := h.svc.ListRoles(r.Context(), caller)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	resp := make([]roleResponse, len(roles))
	for i := range roles {
		resp[i] = toRole(&roles[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetRole handles GET /api/roles/:id.
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	role, err := h.svc.GetRole(r.Context(), caller, id)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRole(role))
}

// CreateRole handles POST /api/roles.
func (h *UserHandler) CreateRole(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	var req roleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	role, err := h.svc.CreateRole(r.Context(), caller, user.RoleInput{Name: req.Name})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRole(role))
}

// UpdateRole handles PUT /api/roles/:id.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req roleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	role, err := h.svc.UpdateRole(r.Context(), caller, id, user.RoleInput{Name: req.Name})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRole(role))
}

// DeleteRole handles DELETE /api/roles/:id.
func (h *UserHandler) DeleteRole(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteRole(r.Context(), caller, id); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateInfo handles POST /api/profile/info.
func (h *UserHandler) UpdateInfo(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	var req userRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.svc.UpdateInfo(r.Context(), caller, user.UpdateInfoInput{Name: req.Name, Email: req.Email})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// UpdatePassword handles POST /api/profile/password.
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	var req passwordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := h.svc.UpdatePassword(r.Context(), caller, user.UpdatePasswordInput{
		Current:      req.Current,
		New:          req.New,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
