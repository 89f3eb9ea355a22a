package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTagCategory is used for tags supplied without a category.
const DefaultTagCategory = "General"

// KnowledgeItem is a document-like record moving through the review workflow.
type KnowledgeItem struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Loaded relations; nil when not requested.
	Author   *User
	Versions []Version
	Tags     []MetadataTag
	Comments []Comment
}

// Version is an immutable marker recording one edit of an item.
type Version struct {
	ID              uuid.UUID
	KnowledgeItemID uuid.UUID
	VersionNumber   string
	CreatedAt       time.Time
}

// MetadataTag is a labeled classification attached to an item.
type MetadataTag struct {
	ID              uuid.UUID
	KnowledgeItemID uuid.UUID
	Label           string
	Category        string
}

// TagInput is a tag as supplied by a caller, before persistence.
type TagInput struct {
	Label    string
	Category *string
}

// CategoryOrDefault returns the trimmed category or DefaultTagCategory.
func (t TagInput) CategoryOrDefault() string {
	if t.Category == nil || *t.Category == "" {
		return DefaultTagCategory
	}
	return *t.Category
}

// Comment is a user-authored remark on an item.
type Comment struct {
	ID              uuid.UUID
	KnowledgeItemID uuid.UUID
	UserID          uuid.UUID
	Text            string
	CreatedAt       time.Time

	User *User
}
