package tenancy

import (
	"context"
	"fmt"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/hierarchy"
)

// CreateCompany makes the unaffiliated caller the ADMIN of a new top-level
// company.
func (s *Service) CreateCompany(ctx context.Context, in CreateCompanyInput) (*Affiliation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.caller(ctx)
	if err != nil {
		return nil, fmt.Errorf("tenancy.CreateCompany: %w", err)
	}
	if user.IsAffiliated() {
		return nil, domain.ErrAlreadyAffiliated
	}

	var out Affiliation
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		company, err := s.directory.CreateCompany(ctx, in.draft())
		if err != nil {
			return fmt.Errorf("create company: %w", err)
		}

		updated, err := s.users.Affiliate(ctx, user.ID, company.ID, domain.UserRoleAdmin)
		if err != nil {
			return fmt.Errorf("affiliate: %w", err)
		}

		if err := s.record(ctx, domain.AuditActionCompanyCreate, user.ID, company.ID,
			"Company Create", "Created company: "+company.Name); err != nil {
			return err
		}

		out = Affiliation{User: updated, Company: company}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tenancy.CreateCompany: %w", err)
	}

	s.transitioned(ctx, transitionCreateCompany, out.User, out.Company)
	return &out, nil
}

// JoinCompany makes the unaffiliated caller a USER of the company holding
// the join code.
func (s *Service) JoinCompany(ctx context.Context, in JoinCompanyInput) (*Affiliation, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, fmt.Errorf("tenancy.JoinCompany: %w", err)
	}
	if user.IsAffiliated() {
		return nil, domain.ErrAlreadyAffiliated
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	company, err := s.directory.FindCompanyByJoinCode(ctx, in.JoinCode)
	if err != nil {
		return nil, fmt.Errorf("tenancy.JoinCompany: %w", err)
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.users.Affiliate(ctx, user.ID, company.ID, domain.UserRoleUser)
		if err != nil {
			return fmt.Errorf("affiliate: %w", err)
		}
		if err := s.record(ctx, domain.AuditActionCompanyJoin, user.ID, company.ID,
			"Company Join", "Joined company: "+company.Name); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tenancy.JoinCompany: %w", err)
	}

	s.transitioned(ctx, transitionJoinCompany, updated, company)
	return &Affiliation{User: updated, Company: company}, nil
}

// SwitchCompany moves the affiliated caller into the company holding the
// join code. The caller keeps their current role. The user update is written
// before the COMPANY_SWITCH entry, which is tagged with the new company.
func (s *Service) SwitchCompany(ctx context.Context, in SwitchCompanyInput) (*Affiliation, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, fmt.Errorf("tenancy.SwitchCompany: %w", err)
	}
	if !user.IsAffiliated() {
		return nil, domain.ErrNotAffiliated
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	target, err := s.directory.FindCompanyByJoinCode(ctx, in.JoinCode)
	if err != nil {
		return nil, fmt.Errorf("tenancy.SwitchCompany: %w", err)
	}
	if user.InCompany(target.ID) {
		return nil, domain.ErrAlreadyMember
	}

	from := *user.CompanyID
	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.users.Reassign(ctx, user.ID, from, target.ID)
		if err != nil {
			return fmt.Errorf("reassign: %w", err)
		}
		if err := s.record(ctx, domain.AuditActionCompanySwitch, user.ID, target.ID,
			"Company Switch", "Switched to company: "+target.Name); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tenancy.SwitchCompany: %w", err)
	}

	s.transitioned(ctx, transitionSwitch, updated, target)
	return &Affiliation{User: updated, Company: target}, nil
}

// CreateChildOrganization creates a child of the caller's current company.
// The caller's own affiliation does not change.
func (s *Service) CreateChildOrganization(ctx context.Context, in CreateChildOrganizationInput) (*domain.Company, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, fmt.Errorf("tenancy.CreateChildOrganization: %w", err)
	}
	if !user.Role.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}
	if !user.IsAffiliated() {
		return nil, domain.ErrNotAffiliated
	}

	child, err := s.hierarchy.CreateChild(ctx, hierarchy.CreateChildInput{
		ParentID:         *user.CompanyID,
		Name:             in.Name,
		OrganizationType: in.OrganizationType,
		Location:         in.Location,
		Description:      in.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("tenancy.CreateChildOrganization: %w", err)
	}

	parent := domain.Company{ID: *user.CompanyID}
	s.transitioned(ctx, transitionCreateChild, user, &parent)
	return child, nil
}
