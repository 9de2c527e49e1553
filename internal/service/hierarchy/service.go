// Package hierarchy walks and grows the company forest built from
// parent_company_id pointers.
package hierarchy

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/metrics"
	"github.com/gearbin/gearbin-backend/internal/service/audit"
	"github.com/gearbin/gearbin-backend/internal/service/directory"
)

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ListChildren(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Company, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CountByCompanies(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error)
}

type companyCreator interface {
	CreateCompany(ctx context.Context, draft directory.CompanyDraft) (*domain.Company, error)
}

type auditLog interface {
	Append(ctx context.Context, in audit.AppendInput) (*domain.AuditEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate moq -out company_repo_mock_test.go -pkg hierarchy . companyRepo
//go:generate moq -out user_repo_mock_test.go -pkg hierarchy . userRepo
//go:generate moq -out company_creator_mock_test.go -pkg hierarchy . companyCreator
//go:generate moq -out audit_log_mock_test.go -pkg hierarchy . auditLog
//go:generate moq -out tx_manager_mock_test.go -pkg hierarchy . txManager

// Limits bound hierarchy traversals.
type Limits struct {
	// MaxAncestorDepth is the longest parent chain accepted before the
	// hierarchy is reported as corrupted.
	MaxAncestorDepth int
	// MaxTreeDepth is the deepest level MaterializeSubtree expands.
	MaxTreeDepth int
}

// Service implements hierarchy operations.
type Service struct {
	companies companyRepo
	users     userRepo
	directory companyCreator
	audit     auditLog
	tx        txManager
	limits    Limits
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewService creates a hierarchy service.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	users userRepo,
	dir companyCreator,
	auditLog auditLog,
	tx txManager,
	limits Limits,
	m *metrics.Metrics,
) *Service {
	if limits.MaxAncestorDepth < 1 {
		limits.MaxAncestorDepth = 1
	}
	if limits.MaxTreeDepth < 0 {
		limits.MaxTreeDepth = 0
	}
	return &Service{
		companies: companies,
		users:     users,
		directory: dir,
		audit:     auditLog,
		tx:        tx,
		limits:    limits,
		metrics:   m,
		log:       log.With("service", "hierarchy"),
	}
}
