// Package audit implements the append-only audit log repository using PostgreSQL.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/adapter/postgres"
	"github.com/gearbin/gearbin-backend/internal/domain"
)

const table = "audit_logs"

var columns = []string{
	"id", "action", "user_id", "company_id", "item_id", "item_name",
	"quantity_change", "previous_quantity", "new_quantity", "note", "created_at",
}

type row struct {
	ID               uuid.UUID  `db:"id"`
	Action           string     `db:"action"`
	UserID           uuid.UUID  `db:"user_id"`
	CompanyID        uuid.UUID  `db:"company_id"`
	ItemID           *uuid.UUID `db:"item_id"`
	ItemName         *string    `db:"item_name"`
	QuantityChange   *int       `db:"quantity_change"`
	PreviousQuantity *int       `db:"previous_quantity"`
	NewQuantity      *int       `db:"new_quantity"`
	Note             *string    `db:"note"`
	CreatedAt        time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.AuditEntry {
	return domain.AuditEntry{
		ID:               r.ID,
		Action:           domain.AuditAction(r.Action),
		UserID:           r.UserID,
		CompanyID:        r.CompanyID,
		ItemID:           r.ItemID,
		ItemName:         r.ItemName,
		QuantityChange:   r.QuantityChange,
		PreviousQuantity: r.PreviousQuantity,
		NewQuantity:      r.NewQuantity,
		Note:             r.Note,
		CreatedAt:        r.CreatedAt,
	}
}

// Repo provides audit log persistence. There is no update or delete.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends e to the audit log.
func (r *Repo) Create(ctx context.Context, e domain.AuditEntry) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.Action.String(), e.UserID, e.CompanyID, e.ItemID, e.ItemName,
			e.QuantityChange, e.PreviousQuantity, e.NewQuantity, e.Note, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit entry", e.ID)
	}
	return nil
}

// CompanyIDsByUser returns every distinct company id that appears in an
// audit entry written by userID.
func (r *Repo) CompanyIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("company_id").
		Distinct().
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit company query: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, query, args...); err != nil {
		return nil, postgres.MapError(err, "audit companies of user", userID)
	}
	return ids, nil
}

// ListByItem returns the entries about itemID recorded in companyID,
// newest first.
func (r *Repo) ListByItem(ctx context.Context, companyID, itemID uuid.UUID, limit uint64) ([]domain.AuditEntry, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"item_id": itemID, "company_id": companyID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item history query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "item history", itemID)
	}

	out := make([]domain.AuditEntry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
