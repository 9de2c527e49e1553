package tenancy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

// SignupCreate registers nu as the ADMIN of a new top-level company.
// Company, user and audit entry commit together.
func (s *Service) SignupCreate(ctx context.Context, nu NewUser, in SignupCreateInput) (*Affiliation, error) {
	if err := nu.Validate(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var out Affiliation
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		company, err := s.directory.CreateCompany(ctx, in.draft())
		if err != nil {
			return fmt.Errorf("create company: %w", err)
		}

		user, err := s.users.Create(ctx, newUser(nu, domain.UserRoleAdmin, company.ID), nu.PasswordHash)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if err := s.record(ctx, domain.AuditActionCompanyCreate, user.ID, company.ID,
			"Company Create", "Created company: "+company.Name); err != nil {
			return err
		}

		out = Affiliation{User: user, Company: company}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tenancy.SignupCreate: %w", err)
	}

	s.transitioned(ctx, transitionSignupCreate, out.User, out.Company)
	return &out, nil
}

// SignupJoin registers nu as a USER of the company holding in.JoinCode.
func (s *Service) SignupJoin(ctx context.Context, nu NewUser, in SignupJoinInput) (*Affiliation, error) {
	if err := nu.Validate(); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	company, err := s.directory.FindCompanyByJoinCode(ctx, in.JoinCode)
	if err != nil {
		return nil, fmt.Errorf("tenancy.SignupJoin: %w", err)
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.users.Create(ctx, newUser(nu, domain.UserRoleUser, company.ID), nu.PasswordHash)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if err := s.record(ctx, domain.AuditActionCompanyJoin, created.ID, company.ID,
			"Company Join", "Joined company: "+company.Name); err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tenancy.SignupJoin: %w", err)
	}

	s.transitioned(ctx, transitionSignupJoin, user, company)
	return &Affiliation{User: user, Company: company}, nil
}

func newUser(nu NewUser, role domain.UserRole, companyID uuid.UUID) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(nu.Email)),
		Name:      strings.TrimSpace(nu.Name),
		Role:      role,
		CompanyID: &companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
