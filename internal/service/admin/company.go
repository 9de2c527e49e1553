package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

// CompanyOverview is the caller's company and its members, oldest first.
type CompanyOverview struct {
	Company *domain.Company
	Members []domain.User
}

// GetCompany returns the caller's company with its members.
func (s *Service) GetCompany(ctx context.Context) (*CompanyOverview, error) {
	caller, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.GetCompany: %w", err)
	}

	company, err := s.companies.GetByID(ctx, *caller.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("admin.GetCompany: %w", err)
	}
	members, err := s.users.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("admin.GetCompany: list members: %w", err)
	}

	return &CompanyOverview{Company: company, Members: members}, nil
}

// UpdateCompany changes the name, location and description of the caller's
// company.
func (s *Service) UpdateCompany(ctx context.Context, in UpdateCompanyInput) (*domain.Company, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	caller, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.UpdateCompany: %w", err)
	}

	name := strings.TrimSpace(in.Name)
	var updated *domain.Company
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.companies.UpdateDetails(ctx, *caller.CompanyID, &name, clean(in.Location), clean(in.Description))
		if err != nil {
			return fmt.Errorf("update company: %w", err)
		}
		if err := s.record(ctx, domain.AuditActionCompanyUpdate, caller.ID, c.ID,
			"Company Update", "Updated company: "+c.Name); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("admin.UpdateCompany: %w", err)
	}

	s.log.InfoContext(ctx, "company updated",
		slog.String("user_id", caller.ID.String()),
		slog.String("company_id", updated.ID.String()),
	)
	return updated, nil
}
