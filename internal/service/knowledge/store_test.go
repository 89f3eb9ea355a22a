package knowledge

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/config"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// memStore is an in-memory backing for the repository mocks. RunInTx
// snapshots it and restores the snapshot when the callback fails.
type memStore struct {
	items         map[uuid.UUID]domain.KnowledgeItem
	versions      map[uuid.UUID][]domain.Version
	tags          map[uuid.UUID][]domain.MetadataTag
	comments      map[uuid.UUID][]domain.Comment
	users         []domain.User
	notifications []domain.Notification
}

func newMemStore(users ...domain.User) *memStore {
	return &memStore{
		items:    map[uuid.UUID]domain.KnowledgeItem{},
		versions: map[uuid.UUID][]domain.Version{},
		tags:     map[uuid.UUID][]domain.MetadataTag{},
		comments: map[uuid.UUID][]domain.Comment{},
		users:    users,
	}
}

func (m *memStore) snapshot() *memStore {
	cp := &memStore{
		items:         make(map[uuid.UUID]domain.KnowledgeItem, len(m.items)),
		versions:      make(map[uuid.UUID][]domain.Version, len(m.versions)),
		tags:          make(map[uuid.UUID][]domain.MetadataTag, len(m.tags)),
		comments:      make(map[uuid.UUID][]domain.Comment, len(m.comments)),
		users:         slices.Clone(m.users),
		notifications: slices.Clone(m.notifications),
	}
	for k, v := range m.items {
		cp.items[k] = v
	}
	for k, v := range m.versions {
		cp.versions[k] = slices.Clone(v)
	}
	for k, v := range m.tags {
		cp.tags[k] = slices.Clone(v)
	}
	for k, v := range m.comments {
		cp.comments[k] = slices.Clone(v)
	}
	return cp
}

func (m *memStore) restore(from *memStore) {
	*m = *from
}

func (m *memStore) getItem(id uuid.UUID) (*domain.KnowledgeItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (m *memStore) notificationsFor(id uuid.UUID) []domain.Notification {
	var out []domain.Notification
	for _, n := range m.notifications {
		if n.RecipientID == id {
			out = append(out, n)
		}
	}
	return out
}

type mocks struct {
	items         *itemRepoMock
	versions      *versionRepoMock
	tags          *tagRepoMock
	comments      *commentRepoMock
	users         *userRepoMock
	notifications *notificationRepoMock
	tx            *txManagerMock
}

// newStoreMocks wires every repository mock to st.
func newStoreMocks(st *memStore) *mocks {
	return &mocks{
		items: &itemRepoMock{
			GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.KnowledgeItem, error) {
				return st.getItem(id)
			},
			GetByIDForUpdateFunc: func(_ context.Context, id uuid.UUID) (*domain.KnowledgeItem, error) {
				return st.getItem(id)
			},
			ListFunc: func(_ context.Context, f domain.ItemFilter) ([]domain.KnowledgeItem, int, error) {
				var all []domain.KnowledgeItem
				for _, it := range st.items {
					if f.Status == nil || it.Status == *f.Status {
						all = append(all, it)
					}
				}
				sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
				meta := domain.NewPageMeta(len(all), f.Page, f.PerPage)
				start := min(meta.Offset(), len(all))
				end := min(start+f.PerPage, len(all))
				return all[start:end], len(all), nil
			},
			CreateFunc: func(_ context.Context, item *domain.KnowledgeItem) (*domain.KnowledgeItem, error) {
				st.items[item.ID] = *item
				out := *item
				return &out, nil
			},
			UpdateContentFunc: func(_ context.Context, id uuid.UUID, title, description string) (*domain.KnowledgeItem, error) {
				item, ok := st.items[id]
				if !ok {
					return nil, domain.ErrNotFound
				}
				item.Title, item.Description, item.UpdatedAt = title, description, time.Now().UTC()
				st.items[id] = item
				return &item, nil
			},
			UpdateStatusFunc: func(_ context.Context, id uuid.UUID, status domain.Status) error {
				item, ok := st.items[id]
				if !ok {
					return domain.ErrNotFound
				}
				item.Status = status
				st.items[id] = item
				return nil
			},
			DeleteFunc: func(_ context.Context, id uuid.UUID) error {
				if _, ok := st.items[id]; !ok {
					return domain.ErrNotFound
				}
				delete(st.items, id)
				delete(st.versions, id)
				delete(st.tags, id)
				delete(st.comments, id)
				return nil
			},
		},
		versions: &versionRepoMock{
			CreateFunc: func(_ context.Context, v domain.Version) (domain.Version, error) {
				st.versions[v.KnowledgeItemID] = append(st.versions[v.KnowledgeItemID], v)
				return v, nil
			},
			LatestFunc: func(_ context.Context, itemID uuid.UUID) (string, error) {
				vs := st.versions[itemID]
				if len(vs) == 0 {
					return "", nil
				}
				return vs[len(vs)-1].VersionNumber, nil
			},
			ListByItemFunc: func(_ context.Context, itemID uuid.UUID) ([]domain.Version, error) {
				return slices.Clone(st.versions[itemID]), nil
			},
		},
		tags: &tagRepoMock{
			DeleteByItemFunc: func(_ context.Context, itemID uuid.UUID) (int, error) {
				n := len(st.tags[itemID])
				delete(st.tags, itemID)
				return n, nil
			},
			CreateManyFunc: func(_ context.Context, tags []domain.MetadataTag) ([]domain.MetadataTag, error) {
				for _, t := range tags {
					st.tags[t.KnowledgeItemID] = append(st.tags[t.KnowledgeItemID], t)
				}
				return tags, nil
			},
			ListByItemFunc: func(_ context.Context, itemID uuid.UUID) ([]domain.MetadataTag, error) {
				return slices.Clone(st.tags[itemID]), nil
			},
		},
		comments: &commentRepoMock{
			CreateFunc: func(_ context.Context, c domain.Comment) (domain.Comment, error) {
				st.comments[c.KnowledgeItemID] = append(st.comments[c.KnowledgeItemID], c)
				return c, nil
			},
			ListByItemFunc: func(_ context.Context, itemID uuid.UUID) ([]domain.Comment, error) {
				return slices.Clone(st.comments[itemID]), nil
			},
		},
		users: &userRepoMock{
			GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.User, error) {
				for _, u := range st.users {
					if u.ID == id {
						return &u, nil
					}
				}
				return nil, domain.ErrNotFound
			},
			ListIDsByRolesFunc: func(_ context.Context, roles []domain.Role, exclude uuid.UUID) ([]uuid.UUID, error) {
				var ids []uuid.UUID
				for _, u := range st.users {
					if u.ID != exclude && slices.Contains(roles, u.Role) {
						ids = append(ids, u.ID)
					}
				}
				return ids, nil
			},
			ListIDsExceptFunc: func(_ context.Context, exclude uuid.UUID) ([]uuid.UUID, error) {
				var ids []uuid.UUID
				for _, u := range st.users {
					if u.ID != exclude {
						ids = append(ids, u.ID)
					}
				}
				return ids, nil
			},
		},
		notifications: &notificationRepoMock{
			CreateManyFunc: func(_ context.Context, ns []domain.Notification) error {
				st.notifications = append(st.notifications, ns...)
				return nil
			},
		},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				saved := st.snapshot()
				if err := fn(ctx); err != nil {
					st.restore(saved)
					return err
				}
				return nil
			},
		},
	}
}

func (m *mocks) service() *Service {
	return NewService(slog.Default(),
		m.items, m.versions, m.tags, m.comments, m.users, m.notifications, m.tx,
		config.KnowledgeConfig{DefaultPageSize: 5, MaxPageSize: 50},
	)
}

func newUser(name string, role domain.Role) domain.User {
	return domain.User{ID: uuid.New(), Name: name, Email: name + "@example.com", Role: role}
}

func callerOf(u domain.User) domain.Caller {
	return domain.Caller{ID: u.ID, Name: u.Name, Role: u.Role}
}

// seedItem creates an item through the service so it carries its first version.
func seedItem(t *testing.T, svc *Service, author domain.User, title string) *domain.KnowledgeItem {
	t.Helper()
	item, err := svc.CreateItem(context.Background(), callerOf(author), CreateItemInput{
		Title:       title,
		Description: "body of " + title,
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}
