package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/tenancy"
)

// Register creates an account and places it in a company: a new one it
// administers (create mode) or the one holding the join code (join mode).
// Returns domain.ErrEmailTaken if the email is already registered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("auth.Register: check email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}
	nu := tenancy.NewUser{Email: input.Email, Name: input.Name, PasswordHash: hash}

	var aff *tenancy.Affiliation
	if input.CompanyMode == ModeCreate {
		aff, err = s.signup.SignupCreate(ctx, nu, tenancy.SignupCreateInput{Name: input.CompanyName})
	} else {
		aff, err = s.signup.SignupJoin(ctx, nu, tenancy.SignupJoinInput{JoinCode: input.JoinCode})
	}
	if err != nil {
		// The email check above can lose a race with a concurrent signup.
		if errors.Is(err, domain.ErrAlreadyExists) && !errors.Is(err, domain.ErrJoinCodeTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issue(aff.User)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}
	result.Company = aff.Company

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", aff.User.ID.String()),
		slog.String("company_id", aff.Company.ID.String()),
		slog.String("mode", input.CompanyMode),
	)
	return result, nil
}
