package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const probeTimeout = 3 * time.Second

type healthProbe interface {
	Ping(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int64, error)
}

// HealthHandler serves the unauthenticated probes. Unlike the administrator
// health check these write nothing to the database.
type HealthHandler struct {
	db      healthProbe
	schema  int64
	version string
}

// NewHealthHandler creates a HealthHandler. schema is the migration version
// the binary expects; 0 skips the schema comparison.
func NewHealthHandler(db healthProbe, schema int64, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// ProbeReport is the JSON body of /live, /ready and /health.
type ProbeReport struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentReport `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentReport is the state of one dependency.
type ComponentReport struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func (r ProbeReport) httpStatus() int {
	if r.Status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// Live answers 200 as long as the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ProbeReport{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 when the database is reachable and migrated far enough
// to serve the API.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	report := h.probe(r.Context())
	report.Components = nil
	writeJSON(w, report.httpStatus(), report)
}

// Health reports every component with latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	report := h.probe(r.Context())
	report.Version = h.version
	writeJSON(w, report.httpStatus(), report)
}

func (h *HealthHandler) probe(ctx context.Context) ProbeReport {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	report := ProbeReport{
		Status:     "ok",
		Components: make(map[string]ComponentReport, 2),
		Timestamp:  time.Now(),
	}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		report.Status = "down"
		report.Components["database"] = ComponentReport{Status: "down"}
		return report
	}
	report.Components["database"] = ComponentReport{Status: "ok", Latency: time.Since(start).String()}

	if h.schema == 0 {
		return report
	}
	applied, err := h.db.SchemaVersion(ctx)
	switch {
	case err != nil:
		report.Status = "down"
		report.Components["schema"] = ComponentReport{Status: "down"}
	case applied < h.schema:
		report.Status = "down"
		report.Components["schema"] = ComponentReport{
			Status: "behind",
			Detail: "applied " + strconv.FormatInt(applied, 10) + ", want " + strconv.FormatInt(h.schema, 10),
		}
	default:
		report.Components["schema"] = ComponentReport{Status: "ok", Detail: "version " + strconv.FormatInt(applied, 10)}
	}
	return report
}
