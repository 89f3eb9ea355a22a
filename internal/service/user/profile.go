package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

// UpdateInfo changes the caller's own name and email. The role is unchanged.
func (s *Service) UpdateInfo(ctx context.Context, caller domain.Caller, input UpdateInfoInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	email := normalizeEmail(input.Email)
	if err := s.ensureEmailFree(ctx, email, caller.ID); err != nil {
		return nil, err
	}

	u, err := s.users.Update(ctx, caller.ID, strings.TrimSpace(input.Name), email, current.RoleID)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", caller.ID.String()))
	return u, nil
}

// UpdatePassword replaces the caller's password after checking the current one.
func (s *Service) UpdatePassword(ctx context.Context, caller domain.Caller, input UpdatePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	ok, err := s.hasher.Verify(current.PasswordHash, input.Current)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return domain.NewValidationError("current_password", "is incorrect")
	}

	hash, err := s.hasher.Hash(input.New)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, caller.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", caller.ID.String()))
	return nil
}
