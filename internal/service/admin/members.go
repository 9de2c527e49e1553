package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

// SetMemberRole changes the role of a member of the caller's company. An
// admin cannot demote themselves.
func (s *Service) SetMemberRole(ctx context.Context, in SetRoleInput) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	caller, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.SetMemberRole: %w", err)
	}
	companyID := *caller.CompanyID

	target, err := s.member(ctx, in.UserID, companyID)
	if err != nil {
		return nil, fmt.Errorf("admin.SetMemberRole: %w", err)
	}
	if target.ID == caller.ID && !in.Role.IsAdmin() {
		return nil, domain.ErrSelfDemotion
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		u, err := s.users.UpdateRole(ctx, target.ID, companyID, in.Role)
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		note := fmt.Sprintf("Changed role of %s from %s to %s", target.Email, target.Role, in.Role)
		if err := s.record(ctx, domain.AuditActionRoleChange, caller.ID, companyID, "Role Change", note); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("admin.SetMemberRole: %w", err)
	}

	s.log.InfoContext(ctx, "member role updated",
		slog.String("user_id", caller.ID.String()),
		slog.String("target_user_id", target.ID.String()),
		slog.String("new_role", in.Role.String()),
	)
	return updated, nil
}

// RemoveMember detaches a member from the caller's company. The removed user
// becomes unaffiliated with role USER. An admin cannot remove themselves.
func (s *Service) RemoveMember(ctx context.Context, userID uuid.UUID) error {
	caller, err := s.requireAdmin(ctx)
	if err != nil {
		return fmt.Errorf("admin.RemoveMember: %w", err)
	}
	companyID := *caller.CompanyID

	target, err := s.member(ctx, userID, companyID)
	if err != nil {
		return fmt.Errorf("admin.RemoveMember: %w", err)
	}
	if target.ID == caller.ID {
		return domain.ErrSelfRemoval
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.Detach(ctx, target.ID, companyID); err != nil {
			return fmt.Errorf("detach: %w", err)
		}
		return s.record(ctx, domain.AuditActionUserRemove, caller.ID, companyID,
			"User Remove", "Removed "+target.Email+" from company")
	})
	if err != nil {
		return fmt.Errorf("admin.RemoveMember: %w", err)
	}

	s.log.InfoContext(ctx, "member removed",
		slog.String("user_id", caller.ID.String()),
		slog.String("target_user_id", target.ID.String()),
		slog.String("company_id", companyID.String()),
	)
	return nil
}

// Invitation is what an admin shares with an invitee out of band.
type Invitation struct {
	Email       string
	CompanyName string
	JoinCode    string
}

// Invite prepares an invitation to the caller's company. Nothing is sent;
// the caller shares the join code themselves.
func (s *Service) Invite(ctx context.Context, in InviteInput) (*Invitation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	caller, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin.Invite: %w", err)
	}
	companyID := *caller.CompanyID
	email := in.normalizedEmail()

	existing, err := s.users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("admin.Invite: %w", err)
	case existing.InCompany(companyID):
		return nil, domain.ErrInviteeIsMember
	case existing.IsAffiliated():
		return nil, domain.ErrInviteeAffiliated
	}

	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("admin.Invite: %w", err)
	}

	if err := s.record(ctx, domain.AuditActionUserInvite, caller.ID, companyID,
		"Invitation sent to "+email, "Admin invited "+email+" to join company"); err != nil {
		return nil, fmt.Errorf("admin.Invite: %w", err)
	}

	return &Invitation{Email: email, CompanyName: company.Name, JoinCode: company.JoinCode}, nil
}
