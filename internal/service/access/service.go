// Package access answers which companies a user may see or select.
package access

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/metrics"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type companyRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Company, error)
	ListChildren(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Company, error)
}

type ancestorWalker interface {
	Ancestors(ctx context.Context, companyID uuid.UUID) ([]domain.Company, error)
}

type historySource interface {
	CompaniesByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

//go:generate moq -out user_repo_mock_test.go -pkg access . userRepo
//go:generate moq -out company_repo_mock_test.go -pkg access . companyRepo
//go:generate moq -out ancestor_walker_mock_test.go -pkg access . ancestorWalker
//go:generate moq -out history_source_mock_test.go -pkg access . historySource

// Service is the access resolver.
type Service struct {
	users     userRepo
	companies companyRepo
	hierarchy ancestorWalker
	history   historySource
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewService creates an access resolver.
func NewService(
	log *slog.Logger,
	users userRepo,
	companies companyRepo,
	hierarchy ancestorWalker,
	history historySource,
	m *metrics.Metrics,
) *Service {
	return &Service{
		users:     users,
		companies: companies,
		hierarchy: hierarchy,
		history:   history,
		metrics:   m,
		log:       log.With("service", "access"),
	}
}
