package rest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	RoleID    uuid.UUID `json:"role_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// authorResponse is the public view of a user attached to another record.
type authorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type tagResponse struct {
	ID       uuid.UUID `json:"id"`
	Label    string    `json:"label"`
	Category string    `json:"category"`
}

type versionResponse struct {
	ID            uuid.UUID `json:"id"`
	VersionNumber string    `json:"version_number"`
	CreatedAt     time.Time `json:"created_at"`
}

type commentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Text      string          `json:"text"`
	User      *authorResponse `json:"user"`
	CreatedAt time.Time       `json:"created_at"`
}

type itemResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      int               `json:"status"`
	StatusLabel string            `json:"status_label"`
	Author      *authorResponse   `json:"author"`
	Tags        []tagResponse     `json:"tags"`
	Versions    []versionResponse `json:"versions,omitempty"`
	Comments    []commentResponse `json:"comments,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type pageResponse struct {
	Total    int `json:"total"`
	Page     int `json:"current_page"`
	PerPage  int `json:"per_page"`
	LastPage int `json:"last_page"`
}

type roleResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserCount int       `json:"users_count"`
	CreatedAt time.Time `json:"created_at"`
}

type notificationResponse struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	Message    string     `json:"message"`
	Link       string     `json:"link"`
	DocumentID uuid.UUID  `json:"document_id"`
	ReadAt     *time.Time `json:"read_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toPage(m domain.PageMeta) pageResponse {
	return pageResponse{Total: m.Total, Page: m.Page, PerPage: m.PerPage, LastPage: m.LastPage}
}

func toUser(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		RoleID:    u.RoleID,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

func toAuthor(u *domain.User) *authorResponse {
	if u == nil {
		return nil
	}
	return &authorResponse{ID: u.ID, Name: u.Name}
}

func toItem(it *domain.KnowledgeItem) itemResponse {
	resp := itemResponse{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Status:      int(it.Status),
		StatusLabel: it.Status.String(),
		Author:      toAuthor(it.Author),
		Tags:        make([]tagResponse, 0, len(it.Tags)),
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
	for _, t := range it.Tags {
		resp.Tags = append(resp.Tags, tagResponse{ID: t.ID, Label: t.Label, Category: t.Category})
	}
	for _, v := range it.Versions {
		resp.Versions = append(resp.Versions, versionResponse{ID: v.ID, VersionNumber: v.VersionNumber, CreatedAt: v.CreatedAt})
	}
	for _, c := range it.Comments {
		resp.Comments = append(resp.Comments, toComment(&c))
	}
	return resp
}

func toComment(c *domain.Comment) commentResponse {
	return commentResponse{ID: c.ID, Text: c.Text, User: toAuthor(c.User), CreatedAt: c.CreatedAt}
}

func toRole(r *domain.RoleRecord) roleResponse {
	return roleResponse{ID: r.ID, Name: r.Name.String(), UserCount: r.UserCount, CreatedAt: r.CreatedAt}
}

func toNotification(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:         n.ID,
		Type:       n.Type.String(),
		Message:    n.Payload.Message,
		Link:       n.Payload.Link,
		DocumentID: n.Payload.DocumentID,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}
}

// tagRequest is the wire form of one tag.
type tagRequest struct {
	Label    string  `json:"label"`
	Category *string `json:"category"`
}

// decodeTags converts the raw "tags" member of a request body. An absent
// member yields nil; null or any non-array value is a validation error.
func decodeTags(raw json.RawMessage) (*[]domain.TagInput, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var in []tagRequest
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &in) != nil {
		return nil, domain.NewValidationError("tags", "must be an array")
	}
	tags := toTagInputs(in)
	return &tags, nil
}

func toTagInputs(in []tagRequest) []domain.TagInput {
	out := make([]domain.TagInput, len(in))
	for i, t := range in {
		out[i] = domain.TagInput{Label: t.Label, Category: t.Category}
	}
	return out
}
