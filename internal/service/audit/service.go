// Package audit is the append-only record of tenant-relevant actions.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/pkg/ctxutil"
)

type auditRepo interface {
	Create(ctx context.Context, e domain.AuditEntry) error
	CompanyIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListByItem(ctx context.Context, companyID, itemID uuid.UUID, limit uint64) ([]domain.AuditEntry, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

//go:generate moq -out audit_repo_mock_test.go -pkg audit . auditRepo
//go:generate moq -out user_repo_mock_test.go -pkg audit . userRepo

// Service appends to and reads the audit trail. It never updates or
// deletes entries.
type Service struct {
	entries auditRepo
	users   userRepo
	log     *slog.Logger
}

// NewService creates an audit service.
func NewService(log *slog.Logger, entries auditRepo, users userRepo) *Service {
	return &Service{
		entries: entries,
		users:   users,
		log:     log.With("service", "audit"),
	}
}

// Append validates in and writes one entry. When ctx carries a transaction
// the entry commits or rolls back with it.
func (s *Service) Append(ctx context.Context, in AppendInput) (*domain.AuditEntry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	e := domain.NewAuditEntry(in.Action, in.UserID, in.CompanyID)
	e.ItemID = in.ItemID
	e.ItemName = in.ItemName
	e.Note = in.Note
	e.PreviousQuantity = in.PreviousQuantity
	e.NewQuantity = in.NewQuantity
	if in.Action == domain.AuditActionUpdateQuantity {
		change := *in.NewQuantity - *in.PreviousQuantity
		e.QuantityChange = &change
	}

	if err := s.entries.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("audit.Append: %w", err)
	}

	s.log.DebugContext(ctx, "audit entry appended",
		slog.String("action", e.Action.String()),
		slog.String("user_id", e.UserID.String()),
		slog.String("company_id", e.CompanyID.String()),
	)
	return &e, nil
}

// CompaniesByUser returns the distinct companies userID has acted in.
func (s *Service) CompaniesByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.entries.CompanyIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("audit.CompaniesByUser: %w", err)
	}
	return ids, nil
}

// ItemHistory returns the entries about itemID inside the caller's current
// company, newest first. Items of other tenants yield an empty list.
func (s *Service) ItemHistory(ctx context.Context, itemID uuid.UUID) ([]domain.AuditEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("audit.ItemHistory: load caller: %w", err)
	}
	if !user.IsAffiliated() {
		return nil, domain.ErrNotAffiliated
	}

	entries, err := s.entries.ListByItem(ctx, *user.CompanyID, itemID, 0)
	if err != nil {
		return nil, fmt.Errorf("audit.ItemHistory: %w", err)
	}
	return entries, nil
}
