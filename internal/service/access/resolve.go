package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/pkg/ctxutil"
)

// Visibility signal names, used in logs and metrics.
const (
	signalAncestors = "ancestors"
	signalChildren  = "admin_children"
	signalHistory   = "audit_history"
)

// VisibleCompanies resolves the companies visible to the caller.
func (s *Service) VisibleCompanies(ctx context.Context) ([]domain.VisibleCompany, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.ResolveVisibleCompanies(ctx, userID)
}

// ResolveVisibleCompanies returns the union of the user's current company,
// every ancestor of it, its direct children when the user is an admin, and
// every company the user has audit entries in. A failing signal is logged
// and contributes nothing; cancellation of ctx is returned as an error.
// The result is ordered by name, then id.
func (s *Service) ResolveVisibleCompanies(ctx context.Context, userID uuid.UUID) ([]domain.VisibleCompany, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("access.ResolveVisibleCompanies: load user: %w", err)
	}

	ids := newIDSet()
	if user.CompanyID != nil {
		ids.add(*user.CompanyID)
	}

	g, gctx := errgroup.WithContext(ctx)

	if user.CompanyID != nil {
		current := *user.CompanyID

		g.Go(func() error {
			chain, err := s.hierarchy.Ancestors(gctx, current)
			if err != nil {
				return s.tolerate(gctx, signalAncestors, userID, err)
			}
			for _, c := range chain {
				ids.add(c.ID)
			}
			return nil
		})

		if user.Role.IsAdmin() {
			g.Go(func() error {
				children, err := s.companies.ListChildren(gctx, []uuid.UUID{current})
				if err != nil {
					return s.tolerate(gctx, signalChildren, userID, err)
				}
				for _, c := range children {
					ids.add(c.ID)
				}
				return nil
			})
		}
	}

	g.Go(func() error {
		past, err := s.history.CompaniesByUser(gctx, userID)
		if err != nil {
			return s.tolerate(gctx, signalHistory, userID, err)
		}
		ids.add(past...)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("access.ResolveVisibleCompanies: %w", err)
	}

	if ids.len() == 0 {
		return []domain.VisibleCompany{}, nil
	}

	companies, err := s.companies.GetByIDs(ctx, ids.list())
	if err != nil {
		return nil, fmt.Errorf("access.ResolveVisibleCompanies: load companies: %w", err)
	}

	out := make([]domain.VisibleCompany, 0, len(companies))
	for _, c := range companies {
		out = append(out, domain.VisibleCompany{
			Company:   c,
			IsCurrent: user.InCompany(c.ID),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	return out, nil
}

// tolerate decides whether a signal failure aborts resolution. Only
// cancellation does; anything else is recorded and skipped.
func (s *Service) tolerate(ctx context.Context, signal string, userID uuid.UUID, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return fmt.Errorf("%s: %w", signal, err)
	}

	s.metrics.ResolverSignalFails.WithLabelValues(signal).Inc()
	s.log.WarnContext(ctx, "visibility signal failed",
		slog.String("signal", signal),
		slog.String("user_id", userID.String()),
		slog.String("error", err.Error()),
	)
	return nil
}

// idSet is a set of company ids safe for concurrent adds.
type idSet struct {
	mu  sync.Mutex
	ids map[uuid.UUID]struct{}
}

func newIDSet() *idSet {
	return &idSet{ids: make(map[uuid.UUID]struct{})}
}

func (s *idSet) add(ids ...uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if id != uuid.Nil {
			s.ids[id] = struct{}{}
		}
	}
}

func (s *idSet) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *idSet) list() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}
