package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

// FindCompanyByID returns the company with id.
func (s *Service) FindCompanyByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("directory.FindCompanyByID: %w", err)
	}
	return c, nil
}

// FindCompanyByJoinCode normalizes code and returns the company holding it.
// Unknown or malformed codes yield domain.ErrInvalidJoinCode.
func (s *Service) FindCompanyByJoinCode(ctx context.Context, code string) (*domain.Company, error) {
	code = domain.NormalizeJoinCode(code)
	if !domain.IsValidJoinCode(code) {
		return nil, domain.ErrInvalidJoinCode
	}

	c, err := s.companies.GetByJoinCode(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidJoinCode
	}
	if err != nil {
		return nil, fmt.Errorf("directory.FindCompanyByJoinCode: %w", err)
	}
	return c, nil
}
