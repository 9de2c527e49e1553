// Package directory looks up companies and mints them with unique join codes.
package directory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/metrics"
)

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetByJoinCode(ctx context.Context, code string) (*domain.Company, error)
	ExistsByJoinCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, c domain.Company) (*domain.Company, error)
}

// CodeGenerator produces join code candidates. Candidates need not be unique;
// the directory checks them against the store.
type CodeGenerator interface {
	Generate() (string, error)
}

// Service is the identity directory.
type Service struct {
	companies   companyRepo
	codes       CodeGenerator
	maxAttempts int
	metrics     *metrics.Metrics
	log         *slog.Logger
}

// NewService creates a directory service. maxAttempts bounds how many
// candidates one operation may draw before giving up.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	codes CodeGenerator,
	maxAttempts int,
	m *metrics.Metrics,
) *Service {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Service{
		companies:   companies,
		codes:       codes,
		maxAttempts: maxAttempts,
		metrics:     m,
		log:         log.With("service", "directory"),
	}
}

//go:generate moq -out company_repo_mock_test.go -pkg directory . companyRepo
//go:generate moq -out code_generator_mock_test.go -pkg directory . CodeGenerator
