package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	RoleID       uuid.UUID
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RoleRecord is a row of the roles table.
type RoleRecord struct {
	ID        uuid.UUID
	Name      Role
	UserCount int // computed, not stored
	CreatedAt time.Time
}

// Caller is the identity on whose behalf a core operation runs.
type Caller struct {
	ID   uuid.UUID
	Name string
	Role Role
}

// IsAuthorOf reports whether the caller authored item.
func (c Caller) IsAuthorOf(item *KnowledgeItem) bool {
	return item != nil && item.AuthorID == c.ID
}
