package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// RoleID returns the id of the role with the given name, creating the role
// when it does not exist yet.
func RoleID(t *testing.T, pool *pgxpool.Pool, role domain.Role) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO roles (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		string(role),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: RoleID %s: %v", role, err)
	}
	return id
}

// SeedUser creates a user with the given role. The password hash is a
// placeholder; tests that log in set their own hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "User " + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "not-a-real-hash",
		RoleID:       RoleID(t, pool, role),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, role_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.RoleID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedItem creates a knowledge item authored by authorID with version "0.1".
func SeedItem(t *testing.T, pool *pgxpool.Pool, authorID uuid.UUID, status domain.Status) domain.KnowledgeItem {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.KnowledgeItem{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Title:       "Item " + suffix,
		Description: "Description " + suffix,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO knowledge_items (id, author_id, title, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.AuthorID, item.Title, item.Description, int16(item.Status), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	v := domain.Version{ID: uuid.New(), KnowledgeItemID: item.ID, VersionNumber: domain.InitialVersion.String(), CreatedAt: now}
	_, err = pool.Exec(ctx,
		`INSERT INTO versions (id, knowledge_item_id, version_number, created_at) VALUES ($1, $2, $3, $4)`,
		v.ID, v.KnowledgeItemID, v.VersionNumber, v.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem version: %v", err)
	}
	item.Versions = []domain.Version{v}

	return item
}

// SeedTag attaches a tag to an item.
func SeedTag(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID, label, category string) domain.MetadataTag {
	t.Helper()

	tag := domain.MetadataTag{ID: uuid.New(), KnowledgeItemID: itemID, Label: label, Category: category}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO metadata_tags (id, knowledge_item_id, label, category) VALUES ($1, $2, $3, $4)`,
		tag.ID, tag.KnowledgeItemID, tag.Label, tag.Category,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}
	return tag
}

// SeedComment adds a comment by userID to an item.
func SeedComment(t *testing.T, pool *pgxpool.Pool, itemID, userID uuid.UUID, text string) domain.Comment {
	t.Helper()

	c := domain.Comment{
		ID:              uuid.New(),
		KnowledgeItemID: itemID,
		UserID:          userID,
		Text:            text,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, knowledge_item_id, user_id, text, created_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.KnowledgeItemID, c.UserID, c.Text, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return c
}
