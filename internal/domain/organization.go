package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPayload is the message body delivered to a recipient.
type NotificationPayload struct {
	Message    string    `json:"message"`
	Link       string    `json:"link"`
	DocumentID uuid.UUID `json:"document_id"`
}

// Notification is a per-recipient message created by the workflow engine.
type Notification struct {
	ID          uuid.UUID
	Type        NotificationType
	RecipientID uuid.UUID
	Payload     NotificationPayload
	ReadAt      *time.Time
	CreatedAt   time.Time
}

// IsRead reports whether the notification has been marked read.
func (n Notification) IsRead() bool {
	return n.ReadAt != nil
}

// ItemLink returns the detail-view link of a knowledge item.
func ItemLink(itemID uuid.UUID) string {
	return "/dashboard/knowledge/" + itemID.String()
}

// SystemHealthLog records the outcome of one health check.
type SystemHealthLog struct {
	ID            uuid.UUID
	MonitoredByID *uuid.UUID
	Status        HealthStatus
	CreatedAt     time.Time

	Monitor *User
}

// LoginLog records one successful login.
type LoginLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	LoginTime time.Time

	User *User
}

// DashboardStats is the aggregate view shown on the dashboard.
type DashboardStats struct {
	TotalDocs      int
	MyDrafts       int
	PendingReviews int
	TotalUsers     int
	Line           []DayCount
	Bar            []CategoryCount
	Pie            []StatusCount
}

// DayCount is the number of items created on a calendar date.
type DayCount struct {
	Date  time.Time
	Count int
}

// CategoryCount is the number of items carrying a tag category.
type CategoryCount struct {
	Category string
	Count    int
}

// StatusCount is the number of items in a workflow status.
type StatusCount struct {
	Status Status
	Count  int
}
