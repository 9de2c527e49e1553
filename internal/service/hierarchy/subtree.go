package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/pkg/ctxutil"
)

// MaterializeSubtree loads rootID and its descendants level by level, one
// children query per level. Levels below MaxTreeDepth are not loaded; nodes
// on the last level that still have children are marked Truncated.
func (s *Service) MaterializeSubtree(ctx context.Context, rootID uuid.UUID) (*domain.OrgTree, error) {
	root, err := s.companies.GetByID(ctx, rootID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("hierarchy.MaterializeSubtree: %w", domain.ErrCompanyNotFound)
		}
		return nil, fmt.Errorf("hierarchy.MaterializeSubtree: %w", err)
	}

	tree := domain.NewOrgTree(*root)
	frontier := []uuid.UUID{root.ID}

	for depth := 0; len(frontier) > 0; depth++ {
		children, err := s.companies.ListChildren(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("hierarchy.MaterializeSubtree: level %d: %w", depth, err)
		}

		if depth >= s.limits.MaxTreeDepth {
			for _, c := range children {
				if n := tree.Node(*c.ParentCompanyID); n != nil {
					n.Truncated = true
				}
			}
			if len(children) > 0 {
				s.log.WarnContext(ctx, "organization tree truncated",
					slog.String("root_id", rootID.String()),
					slog.Int("max_depth", s.limits.MaxTreeDepth),
				)
			}
			break
		}

		next := make([]uuid.UUID, 0, len(children))
		for _, c := range children {
			if c.ParentCompanyID == nil {
				continue
			}
			if !tree.Attach(*c.ParentCompanyID, c) {
				s.log.WarnContext(ctx, "company reached twice in subtree",
					slog.String("company_id", c.ID.String()),
				)
				continue
			}
			next = append(next, c.ID)
		}
		frontier = next
	}

	counts, err := s.users.CountByCompanies(ctx, tree.IDs())
	if err != nil {
		return nil, fmt.Errorf("hierarchy.MaterializeSubtree: count users: %w", err)
	}
	for id, n := range tree.Nodes {
		n.UserCount = counts[id]
	}
	tree.ComputeDescendantCounts()

	return tree, nil
}

// OrganizationView is the organization an admin belongs to, seen from the
// root of their hierarchy.
type OrganizationView struct {
	Tree             *domain.OrgTree
	CurrentCompanyID uuid.UUID
	Role             domain.UserRole
}

// OrganizationTree returns the whole organization of the calling admin.
func (s *Service) OrganizationTree(ctx context.Context) (*OrganizationView, error) {
	user, err := s.caller(ctx)
	if err != nil {
		return nil, fmt.Errorf("hierarchy.OrganizationTree: %w", err)
	}
	if !user.IsAffiliated() {
		return nil, domain.ErrNotAffiliated
	}
	if !user.Role.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}

	root, err := s.FindRoot(ctx, *user.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("hierarchy.OrganizationTree: %w", err)
	}
	tree, err := s.MaterializeSubtree(ctx, root.ID)
	if err != nil {
		return nil, fmt.Errorf("hierarchy.OrganizationTree: %w", err)
	}

	return &OrganizationView{
		Tree:             tree,
		CurrentCompanyID: *user.CompanyID,
		Role:             user.Role,
	}, nil
}

func (s *Service) caller(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("load caller: %w", err)
	}
	return user, nil
}
