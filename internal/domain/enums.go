package domain

import "fmt"

// Status is the workflow state of a knowledge item.
type Status int

const (
	StatusDraft         Status = 0
	StatusPendingReview Status = 1
	StatusPublished     Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "DRAFT"
	case StatusPendingReview:
		return "PENDING_REVIEW"
	case StatusPublished:
		return "PUBLISHED"
	}
	return fmt.Sprintf("STATUS(%d)", int(s))
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusPublished:
		return true
	}
	return false
}

// Role is the authorization role of a user. The value is the role name as
// stored in the roles table; names outside the known set are ordinary roles.
type Role string

const (
	RoleAdministrator     Role = "Administrator"
	RoleManager           Role = "Manager"
	RoleKnowledgeChampion Role = "Knowledge Champion"
	RoleEmployee          Role = "Employee"
)

func (r Role) String() string { return string(r) }

// IsKnown reports whether r is one of the built-in roles.
func (r Role) IsKnown() bool {
	switch r {
	case RoleAdministrator, RoleManager, RoleKnowledgeChampion, RoleEmployee:
		return true
	}
	return false
}

// IsAdmin reports whether r grants full administrative rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdministrator
}

// IsPrivilegedReviewer reports whether r may review, publish and move any
// item to any status.
func (r Role) IsPrivilegedReviewer() bool {
	return r == RoleAdministrator || r == RoleManager
}

// PrivilegedReviewerRoles lists the roles for which IsPrivilegedReviewer is true.
func PrivilegedReviewerRoles() []Role {
	return []Role{RoleAdministrator, RoleManager}
}

// NotificationType identifies why a notification was created.
type NotificationType string

const (
	NotificationReviewRequested NotificationType = "ReviewRequested"
	NotificationItemPublished   NotificationType = "ItemPublished"
	NotificationReturnedToDraft NotificationType = "ReturnedToDraft"
)

func (t NotificationType) String() string { return string(t) }

// HealthStatus is the result of a system health check.
type HealthStatus int

const (
	HealthIssues  HealthStatus = 0
	HealthHealthy HealthStatus = 1
)

// Label returns the human-readable label of the health status.
func (h HealthStatus) Label() string {
	if h == HealthHealthy {
		return "Healthy"
	}
	return "Issues Detected"
}
