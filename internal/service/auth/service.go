// Package auth implements password login and access-token validation.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/knowledge-backend/internal/auth"
	"github.com/heartmarshall/knowledge-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg auth . userRepo
//go:generate moq -out login_log_repo_mock_test.go -pkg auth . loginLogRepo
//go:generate moq -out password_verifier_mock_test.go -pkg auth . passwordVerifier
//go:generate moq -out jwt_manager_mock_test.go -pkg auth . jwtManager

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// loginLogRepo records successful logins.
type loginLogRepo interface {
	CreateLoginLog(ctx context.Context, l domain.LoginLog) error
}

// passwordVerifier checks a password against its stored hash.
type passwordVerifier interface {
	Verify(hash, password string) (bool, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.Role) (string, error)
	ValidateAccessToken(token string) (auth.Identity, error)
	AccessTTL() time.Duration
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	loginLogs loginLogRepo
	passwords passwordVerifier
	jwt       jwtManager
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	loginLogs loginLogRepo,
	passwords passwordVerifier,
	jwt jwtManager,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		loginLogs: loginLogs,
		passwords: passwords,
		jwt:       jwt,
	}
}
