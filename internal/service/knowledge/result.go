package knowledge

import "github.com/heartmarshall/knowledge-backend/internal/domain"

// UpdateItemResult is returned by UpdateItem.
type UpdateItemResult struct {
	Version string
	Item    *domain.KnowledgeItem
}

// ChangeStatusResult is returned by ChangeStatus. Notified is the number of
// notification rows written.
type ChangeStatusResult struct {
	Status   domain.Status
	Notified int
}
