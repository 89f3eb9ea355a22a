package auth

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// Identity is what a valid access token asserts about its bearer. The role
// is informational; authorization decisions use the role stored for the user.
type Identity struct {
	UserID uuid.UUID
	Role   domain.Role
}
