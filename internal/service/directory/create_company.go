package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

// GenerateUniqueJoinCode returns a code that no company held at the time of
// the check. Uniqueness at insert time is enforced by CreateCompany.
func (s *Service) GenerateUniqueJoinCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code, free, err := s.nextCandidate(ctx)
		if err != nil {
			return "", fmt.Errorf("directory.GenerateUniqueJoinCode: %w", err)
		}
		if free {
			return code, nil
		}
	}
	return "", fmt.Errorf("directory.GenerateUniqueJoinCode: %w", domain.ErrJoinCodeExhausted)
}

// CreateCompany validates draft, assigns a fresh join code and persists the
// company. A code lost to a concurrent insert is replaced by a new candidate.
func (s *Service) CreateCompany(ctx context.Context, draft CompanyDraft) (*domain.Company, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	company := domain.Company{
		ID:               uuid.New(),
		Name:             strings.TrimSpace(draft.Name),
		OrganizationType: draft.OrganizationType,
		ParentCompanyID:  draft.ParentCompanyID,
		Location:         trimOrNil(draft.Location),
		Description:      trimOrNil(draft.Description),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		code, free, err := s.nextCandidate(ctx)
		if err != nil {
			return nil, fmt.Errorf("directory.CreateCompany: %w", err)
		}
		if !free {
			continue
		}

		company.JoinCode = code
		created, err := s.companies.Create(ctx, company)
		if errors.Is(err, domain.ErrJoinCodeTaken) {
			s.collision(ctx)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("directory.CreateCompany: %w", err)
		}
		return created, nil
	}

	s.log.ErrorContext(ctx, "join code attempts exhausted", slog.Int("attempts", s.maxAttempts))
	return nil, fmt.Errorf("directory.CreateCompany: %w", domain.ErrJoinCodeExhausted)
}

// nextCandidate draws one code and reports whether it is currently unused.
func (s *Service) nextCandidate(ctx context.Context) (string, bool, error) {
	code, err := s.codes.Generate()
	if err != nil {
		return "", false, fmt.Errorf("generate join code: %w", err)
	}
	if !domain.IsValidJoinCode(code) {
		return "", false, fmt.Errorf("generator returned malformed join code %q", code)
	}

	exists, err := s.companies.ExistsByJoinCode(ctx, code)
	if err != nil {
		return "", false, fmt.Errorf("check join code: %w", err)
	}
	if exists {
		s.collision(ctx)
		return code, false, nil
	}
	return code, true, nil
}

func (s *Service) collision(ctx context.Context) {
	s.metrics.JoinCodeCollisions.Inc()
	s.log.DebugContext(ctx, "join code collision")
}
