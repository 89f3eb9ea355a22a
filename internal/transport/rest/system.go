package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
	"github.com/heartmarshall/knowledge-backend/internal/service/system"
)

type systemService interface {
	HealthCheck(ctx context.Context, caller domain.Caller) (*system.HealthResult, error)
	ListHealthLogs(ctx context.Context, caller domain.Caller) ([]domain.SystemHealthLog, error)
	ListLoginLogs(ctx context.Context, caller domain.Caller) ([]domain.LoginLog, error)
}

// SystemHandler serves the administrator health check and audit logs.
type SystemHandler struct {
	svc systemService
	log *slog.Logger
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(svc systemService, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{svc: svc, log: logger.With("handler", "system")}
}

type healthLogResponse struct {
	ID        uuid.UUID       `json:"id"`
	Status    int             `json:"status"`
	Label     string          `json:"label"`
	Monitor   *authorResponse `json:"monitored_by"`
	CreatedAt time.Time       `json:"created_at"`
}

type loginLogResponse struct {
	ID        uuid.UUID       `json:"id"`
	User      *authorResponse `json:"user"`
	LoginTime time.Time       `json:"login_time"`
}

func toHealthLog(l domain.SystemHealthLog) healthLogResponse {
	return healthLogResponse{
		ID:        l.ID,
		Status:    int(l.Status),
		Label:     l.Status.Label(),
		Monitor:   toAuthor(l.Monitor),
		CreatedAt: l.CreatedAt,
	}
}

// HealthCheck handles POST /api/system/health-check. A failed check answers
// 503 with the recorded log entry.
func (h *SystemHandler) HealthCheck(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	result, err := h.svc.HealthCheck(r.Context(), caller)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	status := http.StatusOK
	if result.Status != domain.HealthHealthy {
		status = http.StatusServiceUnavailable
	}
	resp := toHealthLog(result.Log)
	resp.Monitor = &authorResponse{ID: caller.ID, Name: caller.Name}
	writeJSON(w, status, resp)
}

// HealthLogs handles GET /api/system/health-logs.
func (h *SystemHandler) HealthLogs(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	logs, err := h.svc.ListHealthLogs(r.Context(), caller)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	resp := make([]healthLogResponse, len(logs))
	for i, l := range logs {
		resp[i] = toHealthLog(l)
	}
	writeJSON(w, http.StatusOK, resp)
}

// LoginLogs handles GET /api/system/login-logs.
func (h *SystemHandler) LoginLogs(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	logs, err := h.svc.ListLoginLogs(r.Context(), caller)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	resp := make([]loginLogResponse, len(logs))
	for i, l := range logs {
		resp[i] = loginLogResponse{ID: l.ID, User: toAuthor(l.User), LoginTime: l.LoginTime}
	}
	writeJSON(w, http.StatusOK, resp)
}
