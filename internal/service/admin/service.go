// Package admin manages the membership and details of the caller's company.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/audit"
	"github.com/gearbin/gearbin-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error)
	UpdateRole(ctx context.Context, id, companyID uuid.UUID, role domain.UserRole) (*domain.User, error)
	Detach(ctx context.Context, id, companyID uuid.UUID) (*domain.User, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, name, location, description *string) (*domain.Company, error)
}

type auditLog interface {
	Append(ctx context.Context, in audit.AppendInput) (*domain.AuditEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate moq -out user_repo_mock_test.go -pkg admin . userRepo
//go:generate moq -out company_repo_mock_test.go -pkg admin . companyRepo
//go:generate moq -out audit_log_mock_test.go -pkg admin . auditLog
//go:generate moq -out tx_manager_mock_test.go -pkg admin . txManager

// Service implements company administration. Every operation acts on the
// caller's current company and requires the caller to be its admin.
type Service struct {
	users     userRepo
	companies companyRepo
	audit     auditLog
	tx        txManager
	log       *slog.Logger
}

// NewService creates an admin service.
func NewService(log *slog.Logger, users userRepo, companies companyRepo, auditLog auditLog, tx txManager) *Service {
	return &Service{
		users:     users,
		companies: companies,
		audit:     auditLog,
		tx:        tx,
		log:       log.With("service", "admin"),
	}
}

// requireAdmin loads the caller and checks they administer their current
// company.
func (s *Service) requireAdmin(ctx context.Context) (*domain.User, error) {
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
	if !user.IsAffiliated() {
		return nil, domain.ErrNotAffiliated
	}
	if !user.Role.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}
	return user, nil
}

// member loads id and checks it belongs to companyID. Users of other
// companies are reported exactly like missing users.
func (s *Service) member(ctx context.Context, id, companyID uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	if !u.InCompany(companyID) {
		return nil, domain.ErrMemberNotFound
	}
	return u, nil
}

func (s *Service) record(ctx context.Context, action domain.AuditAction, userID, companyID uuid.UUID, itemName, note string) error {
	if _, err := s.audit.Append(ctx, audit.Noted(action, userID, companyID, itemName, note)); err != nil {
		return fmt.Errorf("audit %s: %w", action, err)
	}
	return nil
}
