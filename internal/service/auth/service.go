// Package auth registers and authenticates users. Registration hands the
// new account to the tenancy service, which places it in a company.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/metrics"
	"github.com/gearbin/gearbin-backend/internal/service/tenancy"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetCredentials(ctx context.Context, email string) (*domain.User, string, error)
}

type signupFlow interface {
	SignupCreate(ctx context.Context, nu tenancy.NewUser, in tenancy.SignupCreateInput) (*tenancy.Affiliation, error)
	SignupJoin(ctx context.Context, nu tenancy.NewUser, in tenancy.SignupJoinInput) (*tenancy.Affiliation, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

//go:generate moq -out user_repo_mock_test.go -pkg auth . userRepo
//go:generate moq -out signup_flow_mock_test.go -pkg auth . signupFlow
//go:generate moq -out password_hasher_mock_test.go -pkg auth . passwordHasher
//go:generate moq -out token_manager_mock_test.go -pkg auth . tokenManager

// Service implements auth operations.
type Service struct {
	log     *slog.Logger
	users   userRepo
	signup  signupFlow
	hasher  passwordHasher
	tokens  tokenManager
	metrics *metrics.Metrics
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	signup signupFlow,
	hasher passwordHasher,
	tokens tokenManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:     logger.With("service", "auth"),
		users:   users,
		signup:  signup,
		hasher:  hasher,
		tokens:  tokens,
		metrics: m,
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
	// Company is set by Register only.
	Company *domain.Company
}

func (s *Service) issue(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *Service) reject(ctx context.Context, reason string) error {
	s.metrics.AuthFailures.WithLabelValues(reason).Inc()
	s.log.DebugContext(ctx, "authentication rejected", slog.String("reason", reason))
	return domain.ErrUnauthorized
}
