package hierarchy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/audit"
)

// CreateChild creates a child organization under in.ParentID. Input is
// validated before the caller is checked, so a PARENT type is rejected for
// every role. The caller must be an admin whose current company is exactly
// the parent. The company and its COMPANY_CREATE entry commit together.
func (s *Service) CreateChild(ctx context.Context, in CreateChildInput) (*domain.Company, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.caller(ctx)
	if err != nil {
		return nil, fmt.Errorf("hierarchy.CreateChild: %w", err)
	}
	if !user.Role.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}
	if !user.IsAdminOf(in.ParentID) {
		return nil, domain.ErrNotParentAdmin
	}

	var child *domain.Company
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.directory.CreateCompany(ctx, in.draft())
		if err != nil {
			return fmt.Errorf("create company: %w", err)
		}

		note := fmt.Sprintf("Created %s: %s", created.OrganizationType, created.Name)
		if _, err := s.audit.Append(ctx, audit.Noted(
			domain.AuditActionCompanyCreate, user.ID, in.ParentID, "Child Organization", note,
		)); err != nil {
			return fmt.Errorf("audit: %w", err)
		}

		child = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hierarchy.CreateChild: %w", err)
	}

	s.log.InfoContext(ctx, "child organization created",
		slog.String("user_id", user.ID.String()),
		slog.String("parent_id", in.ParentID.String()),
		slog.String("company_id", child.ID.String()),
		slog.String("organization_type", child.OrganizationType.String()),
	)

	return child, nil
}
