package auth

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

// Login authenticates a user with email + password, records the login and
// issues an access token. Unknown emails and wrong passwords both yield
// ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, err := s.passwords.Verify(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login verify password: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	if err := s.loginLogs.CreateLoginLog(ctx, domain.LoginLog{
		ID:        uuid.New(),
		UserID:    user.ID,
		LoginTime: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("auth.Login record login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return &AuthResult{
		AccessToken: token,
		ExpiresIn:   s.jwt.AccessTTL(),
		User:        user,
	}, nil
}

// ValidateToken verifies an access token and returns the identity it carries.
// Any verification failure yields ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.Role, error) {
	id, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", slog.String("error", err.Error()))
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return id.UserID, id.Role, nil
}
