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

// ListUsers returns a page of users matching search by name or email
// (administrators only).
func (s *Service) ListUsers(ctx context.Context, caller domain.Caller, search string, page int) (*domain.UserPage, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	f := domain.UserFilter{
		Search:  strings.TrimSpace(search),
		Page:    max(page, 1),
		PerPage: s.pageSize,
	}
	users, total, err := s.users.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return &domain.UserPage{Users: users, PageMeta: domain.NewPageMeta(total, f.Page, f.PerPage)}, nil
}

// GetUser returns a user by ID (administrators only).
func (s *Service) GetUser(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// CreateUser creates a user with the given role (administrators only).
func (s *Service) CreateUser(ctx context.Context, caller domain.Caller, input CreateUserInput) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	if err := s.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.ensureRoleExists(ctx, input.RoleID); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		RoleID:       input.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID.String()),
		slog.String("role", u.Role.String()),
		slog.String("admin_id", caller.ID.String()),
	)
	return u, nil
}

// UpdateUser changes name, email and role of a user (administrators only).
func (s *Service) UpdateUser(ctx context.Context, caller domain.Caller, input UpdateUserInput) (*domain.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	email := normalizeEmail(input.Email)
	if err := s.ensureEmailFree(ctx, email, input.UserID); err != nil {
		return nil, err
	}
	if err := s.ensureRoleExists(ctx, input.RoleID); err != nil {
		return nil, err
	}

	u, err := s.users.Update(ctx, input.UserID, strings.TrimSpace(input.Name), email, input.RoleID)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", u.ID.String()),
		slog.String("role", u.Role.String()),
		slog.String("admin_id", caller.ID.String()),
	)
	return u, nil
}

// DeleteUser removes a user (administrators only). Administrators cannot
// delete their own account.
func (s *Service) DeleteUser(ctx context.Context, caller domain.Caller, id uuid.UUID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if id == caller.ID {
		return domain.NewValidationError("id", "cannot delete yourself")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("user_id", id.String()),
		slog.String("admin_id", caller.ID.String()),
	)
	return nil
}

// ensureEmailFree fails with a validation error when email belongs to a user
// other than except.
func (s *Service) ensureEmailFree(ctx context.Context, email string, except uuid.UUID) error {
	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check email: %w", err)
	case existing.ID != except:
		return domain.NewValidationError("email", "has already been taken")
	}
	return nil
}

func (s *Service) ensureRoleExists(ctx context.Context, id uuid.UUID) error {
	_, err := s.roles.GetByID(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.NewValidationError("role_id", "unknown role")
	case err != nil:
		return fmt.Errorf("get role: %w", err)
	}
	return nil
}
