package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
	"github.com/heartmarshall/knowledge-backend/pkg/ctxutil"
)

type callerResolver interface {
	ResolveCaller(ctx context.Context, userID uuid.UUID) (domain.Caller, error)
}

// callerHandlerFunc is a handler that runs on behalf of an authenticated user.
type callerHandlerFunc func(w http.ResponseWriter, r *http.Request, caller domain.Caller)

// Authenticator turns the user id placed in the context by middleware.Auth
// into a domain.Caller carrying the role currently stored for that user.
type Authenticator struct {
	callers callerResolver
	log     *slog.Logger
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(callers callerResolver, logger *slog.Logger) *Authenticator {
	return &Authenticator{callers: callers, log: logger.With("handler", "caller")}
}

// Wrap answers 401 for anonymous requests and for tokens whose user no
// longer exists.
func (a *Authenticator) Wrap(fn callerHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ctxutil.UserIDFromCtx(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		caller, err := a.callers.ResolveCaller(r.Context(), userID)
		if err != nil {
			respondError(a.log, w, r, err)
			return
		}
		fn(w, r, caller)
	})
}
