package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

type dashboardService interface {
	Stats(ctx context.Context, caller domain.Caller) (*domain.DashboardStats, error)
}

// DashboardHandler serves GET /api/dashboard-stats.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type dayCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type categoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type statusCountResponse struct {
	Status int    `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type statsResponse struct {
	TotalDocs      int                     `json:"total_docs"`
	MyDrafts       int                     `json:"my_drafts"`
	PendingReviews int                     `json:"pending_reviews"`
	TotalUsers     int                     `json:"total_users"`
	Line           []dayCountResponse      `json:"line"`
	Bar            []categoryCountResponse `json:"bar"`
	Pie            []statusCountResponse   `json:"pie"`
}

// Stats handles GET /api/dashboard-stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request, caller domain.Caller) {
	stats, err := h.svc.Stats(r.Context(), caller)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := statsResponse{
		TotalDocs:      stats.TotalDocs,
		MyDrafts:       stats.MyDrafts,
		PendingReviews: stats.PendingReviews,
		TotalUsers:     stats.TotalUsers,
		Line:           make([]dayCountResponse, 0, len(stats.Line)),
		Bar:            make([]categoryCountResponse, 0, len(stats.Bar)),
		Pie:            make([]statusCountResponse, 0, len(stats.Pie)),
	}
	for _, d := range stats.Line {
		resp.Line = append(resp.Line, dayCountResponse{Date: d.Date.Format("2006-01-02"), Count: d.Count})
	}
	for _, c := range stats.Bar {
		resp.Bar = append(resp.Bar, categoryCountResponse{Category: c.Category, Count: c.Count})
	}
	for _, s := range stats.Pie {
		resp.Pie = append(resp.Pie, statusCountResponse{Status: int(s.Status), Label: s.Status.String(), Count: s.Count})
	}
	writeJSON(w, http.StatusOK, resp)
}
