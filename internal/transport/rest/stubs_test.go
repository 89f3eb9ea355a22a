package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
	"github.com/heartmarshall/knowledge-backend/internal/service/auth"
	"github.com/heartmarshall/knowledge-backend/internal/service/knowledge"
	"github.com/heartmarshall/knowledge-backend/internal/service/notification"
	"github.com/heartmarshall/knowledge-backend/internal/service/system"
	"github.com/heartmarshall/knowledge-backend/internal/service/user"
	"github.com/heartmarshall/knowledge-backend/internal/transport/dataloader"
	"github.com/heartmarshall/knowledge-backend/pkg/ctxutil"
)

// Each stub embeds the service interface so a test only implements the
// methods it exercises; anything else panics on the nil embedded value.

type callersStub map[uuid.UUID]domain.Caller

func (s callersStub) ResolveCaller(_ context.Context, id uuid.UUID) (domain.Caller, error) {
	c, ok := s[id]
	if !ok {
		return domain.Caller{}, domain.ErrUnauthorized
	}
	return c, nil
}

type authStub struct {
	login func(auth.LoginInput) (*auth.AuthResult, error)
	me    func(domain.Caller) (*domain.User, error)
}

func (s *authStub) Login(_ context.Context, in auth.LoginInput) (*auth.AuthResult, error) {
	return s.login(in)
}

func (s *authStub) Me(_ context.Context, c domain.Caller) (*domain.User, error) { return s.me(c) }

type knowledgeStub struct {
	knowledgeService
	list         func(knowledge.ListItemsInput) (*domain.ItemPage, error)
	get          func(uuid.UUID) (*domain.KnowledgeItem, error)
	create       func(domain.Caller, knowledge.CreateItemInput) (*domain.KnowledgeItem, error)
	update       func(domain.Caller, knowledge.UpdateItemInput) (*knowledge.UpdateItemResult, error)
	del          func(domain.Caller, uuid.UUID) error
	changeStatus func(domain.Caller, knowledge.ChangeStatusInput) (*knowledge.ChangeStatusResult, error)
	addComment   func(domain.Caller, knowledge.AddCommentInput) (*domain.Comment, error)
}

func (s *knowledgeStub) ListItems(_ context.Context, in knowledge.ListItemsInput) (*domain.ItemPage, error) {
	return s.list(in)
}

func (s *knowledgeStub) GetItem(_ context.Context, id uuid.UUID) (*domain.KnowledgeItem, error) {
	return s.get(id)
}

func (s *knowledgeStub) CreateItem(_ context.Context, c domain.Caller, in knowledge.CreateItemInput) (*domain.KnowledgeItem, error) {
	return s.create(c, in)
}

func (s *knowledgeStub) UpdateItem(_ context.Context, c domain.Caller, in knowledge.UpdateItemInput) (*knowledge.UpdateItemResult, error) {
	return s.update(c, in)
}

func (s *knowledgeStub) DeleteItem(_ context.Context, c domain.Caller, id uuid.UUID) error {
	return s.del(c, id)
}

func (s *knowledgeStub) ChangeStatus(_ context.Context, c domain.Caller, in knowledge.ChangeStatusInput) (*knowledge.ChangeStatusResult, error) {
	return s.changeStatus(c, in)
}

func (s *knowledgeStub) AddComment(_ context.Context, c domain.Caller, in knowledge.AddCommentInput) (*domain.Comment, error) {
	return s.addComment(c, in)
}

type dashboardStub struct {
	stats func(domain.Caller) (*domain.DashboardStats, error)
}

func (s *dashboardStub) Stats(_ context.Context, c domain.Caller) (*domain.DashboardStats, error) {
	return s.stats(c)
}

type notificationStub struct {
	notificationService
	list func(c domain.Caller, limit int, newestFirst bool) (*notification.Inbox, error)
}

func (s *notificationStub) List(_ context.Context, c domain.Caller, limit int, newestFirst bool) (*notification.Inbox, error) {
	return s.list(c, limit, newestFirst)
}

type userStub struct {
	userService
	deleteRole     func(domain.Caller, uuid.UUID) error
	updatePassword func(domain.Caller, user.UpdatePasswordInput) error
}

func (s *userStub) DeleteRole(_ context.Context, c domain.Caller, id uuid.UUID) error {
	return s.deleteRole(c, id)
}

func (s *userStub) UpdatePassword(_ context.Context, c domain.Caller, in user.UpdatePasswordInput) error {
	return s.updatePassword(c, in)
}

type systemStub struct {
	systemService
	check func(domain.Caller) (*system.HealthResult, error)
}

func (s *systemStub) HealthCheck(_ context.Context, c domain.Caller) (*system.HealthResult, error) {
	return s.check(c)
}

type loaderUsers []domain.User

func (u loaderUsers) GetByIDs(_ context.Context, _ []uuid.UUID) ([]domain.User, error) {
	return u, nil
}

type loaderTags []domain.MetadataTag

func (t loaderTags) ListByItemIDs(_ context.Context, _ []uuid.UUID) ([]domain.MetadataTag, error) {
	return t, nil
}

type testServer struct {
	handler   http.Handler
	callers   callersStub
	auth      *authStub
	knowledge *knowledgeStub
	dashboard *dashboardStub
	notify    *notificationStub
	users     *userStub
	system    *systemStub
	repos     *dataloader.Repos
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := &testServer{
		callers:   callersStub{},
		auth:      &authStub{},
		knowledge: &knowledgeStub{},
		dashboard: &dashboardStub{},
		notify:    &notificationStub{},
		users:     &userStub{},
		system:    &systemStub{},
		repos:     &dataloader.Repos{User: loaderUsers{}, Tag: loaderTags{}},
	}
	s.handler = NewRouter(Handlers{
		Auth:          NewAuthHandler(s.auth, s.auth, logger),
		Knowledge:     NewKnowledgeHandler(s.knowledge, logger),
		Dashboard:     NewDashboardHandler(s.dashboard, logger),
		Notifications: NewNotificationHandler(s.notify, logger),
		Users:         NewUserHandler(s.users, logger),
		System:        NewSystemHandler(s.system, logger),
		Health:        NewHealthHandler(&probeStub{}, 0, "test"),
	}, NewAuthenticator(s.callers, logger), RouterOptions{
		Loaders: func(next http.Handler) http.Handler {
			return dataloader.Middleware(s.repos)(next)
		},
	})
	return s
}

// addCaller registers a user the Authenticator can resolve.
func (s *testServer) addCaller(role domain.Role) domain.Caller {
	c := domain.Caller{ID: uuid.New(), Name: string(role) + " user", Role: role}
	s.callers[c.ID] = c
	return c
}

// do sends a request as caller; a zero caller sends it anonymously.
func (s *testServer) do(t *testing.T, caller domain.Caller, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if caller.ID != uuid.Nil {
		req = req.WithContext(ctxutil.WithUserID(req.Context(), caller.ID))
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
