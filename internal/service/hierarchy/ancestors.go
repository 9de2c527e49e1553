package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

// Ancestors returns companyID's company followed by each parent up to the
// root. A parent pointer to a missing company ends the walk at the last
// company found. A revisited company or a chain longer than
// MaxAncestorDepth yields domain.ErrHierarchyCorrupted.
func (s *Service) Ancestors(ctx context.Context, companyID uuid.UUID) ([]domain.Company, error) {
	start, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("hierarchy.Ancestors: %w", domain.ErrCompanyNotFound)
		}
		return nil, fmt.Errorf("hierarchy.Ancestors: %w", err)
	}

	chain := []domain.Company{*start}
	visited := map[uuid.UUID]struct{}{start.ID: {}}

	for cur := start; cur.ParentCompanyID != nil; {
		parentID := *cur.ParentCompanyID

		if _, seen := visited[parentID]; seen {
			return nil, s.corrupted(ctx, "cycle", companyID, parentID)
		}
		if len(chain) >= s.limits.MaxAncestorDepth {
			return nil, s.corrupted(ctx, "depth_exceeded", companyID, parentID)
		}

		parent, err := s.companies.GetByID(ctx, parentID)
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "dangling parent pointer",
				slog.String("company_id", cur.ID.String()),
				slog.String("parent_id", parentID.String()),
			)
			break
		}
		if err != nil {
			return nil, fmt.Errorf("hierarchy.Ancestors: %w", err)
		}

		chain = append(chain, *parent)
		visited[parent.ID] = struct{}{}
		cur = parent
	}

	return chain, nil
}

// FindRoot returns the topmost ancestor of companyID.
func (s *Service) FindRoot(ctx context.Context, companyID uuid.UUID) (*domain.Company, error) {
	chain, err := s.Ancestors(ctx, companyID)
	if err != nil {
		return nil, err
	}
	root := chain[len(chain)-1]
	return &root, nil
}

func (s *Service) corrupted(ctx context.Context, reason string, startID, atID uuid.UUID) error {
	s.metrics.HierarchyIntegrity.WithLabelValues(reason).Inc()
	s.log.ErrorContext(ctx, "corrupted company hierarchy",
		slog.String("reason", reason),
		slog.String("start_id", startID.String()),
		slog.String("at_id", atID.String()),
		slog.Int("max_depth", s.limits.MaxAncestorDepth),
	)
	return fmt.Errorf("hierarchy.Ancestors: %s: %w", reason, domain.ErrHierarchyCorrupted)
}
