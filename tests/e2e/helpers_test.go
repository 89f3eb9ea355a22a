//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/knowledge-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/knowledge-backend/internal/app"
	"github.com/heartmarshall/knowledge-backend/internal/auth"
	"github.com/heartmarshall/knowledge-backend/internal/config"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
	"github.com/heartmarshall/knowledge-backend/internal/transport/middleware"
)

const testPassword = "correct-horse-battery"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
			BcryptCost:     4,
		},
		Knowledge: config.KnowledgeConfig{
			DefaultPageSize:        5,
			MaxPageSize:            50,
			UserPageSize:           10,
			NotificationLimit:      10,
			NotificationRetentDays: 30,
			HealthLogLimit:         20,
			LoginLogLimit:          50,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		RateLimit: config.RateLimitConfig{
			LoginPerMinute:  1000,
			CleanupInterval: time.Minute,
		},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(logger, cfg, pool, limiter))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// createUser seeds a user with the given role and a known password.
func (ts *testServer) createUser(t *testing.T, role domain.Role) domain.User {
	t.Helper()

	u := testhelper.SeedUser(t, ts.Pool, role)
	hash, err := auth.NewPasswordHasher(4).Hash(testPassword)
	require.NoError(t, err)

	_, err = ts.Pool.Exec(context.Background(),
		`UPDATE users SET password_hash = $1 WHERE id = $2`, hash, u.ID)
	require.NoError(t, err)
	u.PasswordHash = hash
	return u
}

// login exchanges credentials for an access token.
func (ts *testServer) login(t *testing.T, email, password string) (int, map[string]any) {
	t.Helper()
	return ts.request(t, http.MethodPost, "/api/login", map[string]any{
		"email":    email,
		"password": password,
	}, "")
}

// userWithToken seeds a user with role and logs them in.
func (ts *testServer) userWithToken(t *testing.T, role domain.Role) (domain.User, string) {
	t.Helper()

	u := ts.createUser(t, role)
	status, body := ts.login(t, u.Email, testPassword)
	require.Equal(t, http.StatusOK, status, "login: %v", body)

	token, ok := body["access_token"].(string)
	require.True(t, ok, "expected access_token string")
	return u, token
}

// request sends a JSON request and decodes a JSON object response. A 204
// yields a nil body.
func (ts *testServer) request(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// requestArray sends a GET and decodes a JSON array response.
func (ts *testServer) requestArray(t *testing.T, path, token string) (int, []any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}
	var result []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// createItem creates a knowledge item through the API and returns its id.
func (ts *testServer) createItem(t *testing.T, token, title string, tags ...map[string]any) string {
	t.Helper()

	if tags == nil {
		tags = []map[string]any{}
	}
	status, body := ts.request(t, http.MethodPost, "/api/knowledge", map[string]any{
		"title":       title,
		"description": "Body of " + title,
		"tags":        tags,
	}, token)
	require.Equal(t, http.StatusCreated, status, "create item: %v", body)

	id, ok := body["id"].(string)
	require.True(t, ok, "expected item id string")
	return id
}

// changeStatus moves an item to status and returns the response.
func (ts *testServer) changeStatus(t *testing.T, token, itemID string, status domain.Status) (int, map[string]any) {
	t.Helper()
	return ts.request(t, http.MethodPost, "/api/knowledge/"+itemID+"/status",
		map[string]any{"status": int(status)}, token)
}

// notificationsFor returns the inbox of the token owner.
func (ts *testServer) notificationsFor(t *testing.T, token string) ([]any, int) {
	t.Helper()

	status, body := ts.request(t, http.MethodGet, "/api/notifications?limit=50", nil, token)
	require.Equal(t, http.StatusOK, status)

	data, ok := body["data"].([]any)
	require.True(t, ok, "expected data array")
	return data, int(body["unread"].(float64))
}

// hasNotificationFor reports whether inbox holds a notification of typ for itemID.
func hasNotificationFor(inbox []any, typ domain.NotificationType, itemID string) bool {
	for _, n := range inbox {
		m := n.(map[string]any)
		if m["type"] == typ.String() && m["document_id"] == itemID {
			return true
		}
	}
	return false
}
