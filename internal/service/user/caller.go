package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// ResolveCaller loads the identity and role on whose behalf a request runs.
// A user that no longer exists is unauthorized.
func (s *Service) ResolveCaller(ctx context.Context, userID uuid.UUID) (domain.Caller, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Caller{}, domain.ErrUnauthorized
		}
		return domain.Caller{}, fmt.Errorf("resolve caller: %w", err)
	}
	return domain.Caller{ID: u.ID, Name: u.Name, Role: u.Role}, nil
}

// Me returns the caller's own user record with its role.
func (s *Service) Me(ctx context.Context, caller domain.Caller) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
