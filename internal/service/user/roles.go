package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// ListRoles returns every role with the number of users holding it
// (administrators only).
func (s *Service) ListRoles(ctx context.Context, caller domain.Caller) ([]domain.RoleRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// GetRole returns a role by ID (administrators only).
func (s *Service) GetRole(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.RoleRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	r, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}
	return r, nil
}

// CreateRole adds a role with a unique name (administrators only).
func (s *Service) CreateRole(ctx context.Context, caller domain.Caller, input RoleInput) (*domain.RoleRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.Role(strings.TrimSpace(input.Name))
	if err := s.ensureRoleNameFree(ctx, name, uuid.Nil); err != nil {
		return nil, err
	}

	r, err := s.roles.Create(ctx, domain.RoleRecord{ID: uuid.New(), Name: name, CreatedAt: time.Now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}

	s.log.InfoContext(ctx, "role created",
		slog.String("role_id", r.ID.String()),
		slog.String("name", r.Name.String()),
	)
	return r, nil
}

// UpdateRole renames a role (administrators only). Built-in roles keep their
// names because authorization depends on them.
func (s *Service) UpdateRole(ctx context.Context, caller domain.Caller, id uuid.UUID, input RoleInput) (*domain.RoleRecord, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}
	name := domain.Role(strings.TrimSpace(input.Name))
	if current.Name.IsKnown() && name != current.Name {
		return nil, domain.NewValidationError("name", "built-in roles cannot be renamed")
	}
	if err := s.ensureRoleNameFree(ctx, name, id); err != nil {
		return nil, err
	}

	r, err := s.roles.Rename(ctx, id, name)
	if err != nil {
		return nil, fmt.Errorf("rename role: %w", err)
	}

	s.log.InfoContext(ctx, "role updated",
		slog.String("role_id", id.String()),
		slog.String("name", r.Name.String()),
	)
	return r, nil
}

// DeleteRole removes a role that no user holds (administrators only).
func (s *Service) DeleteRole(ctx context.Context, caller domain.Caller, id uuid.UUID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	current, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get role: %w", err)
	}
	if current.Name.IsKnown() {
		return domain.NewValidationError("role", "built-in roles cannot be deleted")
	}
	if current.UserCount > 0 {
		return domain.NewValidationError("role", "cannot delete a role that has users assigned")
	}

	if err := s.roles.Delete(ctx, id); err != nil {
		// A user may have been assigned since the count was read.
		if errors.Is(err, domain.ErrConflict) {
			return domain.NewValidationError("role", "cannot delete a role that has users assigned")
		}
		return fmt.Errorf("delete role: %w", err)
	}

	s.log.InfoContext(ctx, "role deleted",
		slog.String("role_id", id.String()),
		slog.String("name", current.Name.String()),
	)
	return nil
}

func (s *Service) ensureRoleNameFree(ctx context.Context, name domain.Role, except uuid.UUID) error {
	existing, err := s.roles.GetByName(ctx, name)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check role name: %w", err)
	case existing.ID != except:
		return domain.NewValidationError("name", "has already been taken")
	}
	return nil
}
