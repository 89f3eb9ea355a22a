package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/pkg/ctxutil"
)

// Logger returns middleware that logs one line per HTTP request: method, path,
// status code, body size, duration and request id. Authenticated requests also
// carry user_id and role. 5xx responses log at error level.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			caller := &requestCaller{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), requestCallerKey{}, caller)))

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			if caller.userID == uuid.Nil {
				caller.userID, _ = ctxutil.UserIDFromCtx(r.Context())
				caller.role = ctxutil.RoleFromCtx(r.Context())
			}
			if caller.userID != uuid.Nil {
				attrs = append(attrs,
					slog.String("user_id", caller.userID.String()),
					slog.String("role", caller.role),
				)
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// requestCaller is filled in by Auth further down the chain so the access
// log can name the caller even though Auth derives a new request context.
type requestCaller struct {
	userID uuid.UUID
	role   string
}

type requestCallerKey struct{}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
