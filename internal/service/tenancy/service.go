// Package tenancy moves users across tenant boundaries: creating, joining
// and switching companies, and spawning child organizations.
package tenancy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/metrics"
	"github.com/gearbin/gearbin-backend/internal/service/audit"
	"github.com/gearbin/gearbin-backend/internal/service/directory"
	"github.com/gearbin/gearbin-backend/internal/service/hierarchy"
	"github.com/gearbin/gearbin-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, u domain.User, passwordHash string) (*domain.User, error)
	Affiliate(ctx context.Context, id, companyID uuid.UUID, role domain.UserRole) (*domain.User, error)
	Reassign(ctx context.Context, id, from, to uuid.UUID) (*domain.User, error)
}

type companyDirectory interface {
	CreateCompany(ctx context.Context, draft directory.CompanyDraft) (*domain.Company, error)
	FindCompanyByJoinCode(ctx context.Context, code string) (*domain.Company, error)
}

type childCreator interface {
	CreateChild(ctx context.Context, in hierarchy.CreateChildInput) (*domain.Company, error)
}

type auditLog interface {
	Append(ctx context.Context, in audit.AppendInput) (*domain.AuditEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate moq -out user_repo_mock_test.go -pkg tenancy . userRepo
//go:generate moq -out company_directory_mock_test.go -pkg tenancy . companyDirectory
//go:generate moq -out child_creator_mock_test.go -pkg tenancy . childCreator
//go:generate moq -out audit_log_mock_test.go -pkg tenancy . auditLog
//go:generate moq -out tx_manager_mock_test.go -pkg tenancy . txManager

// Transition names, used as the metric label.
const (
	transitionSignupCreate  = "signup_create"
	transitionSignupJoin    = "signup_join"
	transitionCreateCompany = "create_company"
	transitionJoinCompany   = "join_company"
	transitionSwitch        = "switch_company"
	transitionCreateChild   = "create_child"
)

// Service is the tenant boundary state machine. Every transition runs in
// one transaction together with its audit entry.
type Service struct {
	users     userRepo
	directory companyDirectory
	hierarchy childCreator
	audit     auditLog
	tx        txManager
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// NewService creates a tenancy service.
func NewService(
	log *slog.Logger,
	users userRepo,
	dir companyDirectory,
	hier childCreator,
	auditLog auditLog,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		users:     users,
		directory: dir,
		hierarchy: hier,
		audit:     auditLog,
		tx:        tx,
		metrics:   m,
		log:       log.With("service", "tenancy"),
	}
}

// Affiliation is the outcome of a transition: the user as stored afterwards
// and the company they are now in.
type Affiliation struct {
	User    *domain.User
	Company *domain.Company
}

func (s *Service) caller(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("load caller: %w", err)
	}
	return user, nil
}

func (s *Service) record(ctx context.Context, action domain.AuditAction, userID, companyID uuid.UUID, itemName, note string) error {
	if _, err := s.audit.Append(ctx, audit.Noted(action, userID, companyID, itemName, note)); err != nil {
		return fmt.Errorf("audit %s: %w", action, err)
	}
	return nil
}

func (s *Service) transitioned(ctx context.Context, transition string, user *domain.User, company *domain.Company) {
	s.metrics.TenantTransitions.WithLabelValues(transition).Inc()
	s.log.InfoContext(ctx, "tenant transition",
		slog.String("transition", transition),
		slog.String("user_id", user.ID.String()),
		slog.String("company_id", company.ID.String()),
		slog.String("role", user.Role.String()),
	)
}
