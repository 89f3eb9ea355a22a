package rest

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/heartmarshall/knowledge-backend/internal/transport/middleware"
)

// Handlers groups every handler the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Knowledge     *KnowledgeHandler
	Dashboard     *DashboardHandler
	Notifications *NotificationHandler
	Users         *UserHandler
	System        *SystemHandler
	Health        *HealthHandler
}

// RouterOptions carries the per-route middleware the router applies.
type RouterOptions struct {
	// LoginLimit throttles POST /api/login. Nil disables throttling.
	LoginLimit middleware.Middleware
	// Loaders installs per-request dataloaders on the listing route.
	Loaders middleware.Middleware
}

// NewRouter mounts every endpoint. Request-wide middleware (request id,
// logging, recovery, CORS, token parsing) is applied by the caller around the
// returned handler.
func NewRouter(h Handlers, authn *Authenticator, opts RouterOptions) *httprouter.Router {
	r := httprouter.New()
	r.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandlerFunc(http.MethodGet, "/live", h.Health.Live)
	r.HandlerFunc(http.MethodGet, "/ready", h.Health.Ready)
	r.HandlerFunc(http.MethodGet, "/health", h.Health.Health)

	r.Handler(http.MethodPost, "/api/login", middleware.Chain(opts.LoginLimit)(http.HandlerFunc(h.Auth.Login)))
	r.Handler(http.MethodGet, "/api/user", authn.Wrap(h.Auth.Me))

	r.Handler(http.MethodGet, "/api/knowledge", middleware.Chain(opts.Loaders)(authn.Wrap(h.Knowledge.List)))
	r.Handler(http.MethodPost, "/api/knowledge", authn.Wrap(h.Knowledge.Create))
	r.Handler(http.MethodGet, "/api/knowledge/:id", authn.Wrap(h.Knowledge.Get))
	r.Handler(http.MethodPut, "/api/knowledge/:id", authn.Wrap(h.Knowledge.Update))
	r.Handler(http.MethodDelete, "/api/knowledge/:id", authn.Wrap(h.Knowledge.Delete))
	r.Handler(http.MethodPost, "/api/knowledge/:id/status", authn.Wrap(h.Knowledge.ChangeStatus))
	r.Handler(http.MethodPost, "/api/knowledge/:id/comments", authn.Wrap(h.Knowledge.AddComment))

	r.Handler(http.MethodGet, "/api/dashboard-stats", authn.Wrap(h.Dashboard.Stats))

	r.Handler(http.MethodGet, "/api/notifications", authn.Wrap(h.Notifications.List))
	r.Handler(http.MethodPost, "/api/notifications/read", authn.Wrap(h.Notifications.MarkAllRead))
	r.Handler(http.MethodDelete, "/api/notifications", authn.Wrap(h.Notifications.DeleteAll))

	r.Handler(http.MethodPost, "/api/profile/info", authn.Wrap(h.Users.UpdateInfo))
	r.Handler(http.MethodPost, "/api/profile/password", authn.Wrap(h.Users.UpdatePassword))

	r.Handler(http.MethodGet, "/api/users", authn.Wrap(h.Users.ListUsers))
	r.Handler(http.MethodPost, "/api/users", authn.Wrap(h.Users.CreateUser))
	r.Handler(http.MethodGet, "/api/users/:id", authn.Wrap(h.Users.GetUser))
	r.Handler(http.MethodPut, "/api/users/:id", authn.Wrap(h.Users.UpdateUser))
	r.Handler(http.MethodDelete, "/api/users/:id", authn.Wrap(h.Users.DeleteUser))

	r.Handler(http.MethodGet, "/api/roles", authn.Wrap(h.Users.ListRoles))
	r.Handler(http.MethodPost, "/api/roles", authn.Wrap(h.Users.CreateRole))
	r.Handler(http.MethodGet, "/api/roles/:id", authn.Wrap(h.Users.GetRole))
	r.Handler(http.MethodPut, "/api/roles/:id", authn.Wrap(h.Users.UpdateRole))
	r.Handler(http.MethodDelete, "/api/roles/:id", authn.Wrap(h.Users.DeleteRole))

	r.Handler(http.MethodPost, "/api/system/health-check", authn.Wrap(h.System.HealthCheck))
	r.Handler(http.MethodGet, "/api/system/health-logs", authn.Wrap(h.System.HealthLogs))
	r.Handler(http.MethodGet, "/api/system/login-logs", authn.Wrap(h.System.LoginLogs))

	return r
}
