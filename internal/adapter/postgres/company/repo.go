// Package company implements the company repository using PostgreSQL.
package company

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/adapter/postgres"
	"github.com/gearbin/gearbin-backend/internal/domain"
)

const (
	table              = "companies"
	joinCodeConstraint = "companies_join_code_key"
)

var columns = []string{
	"id", "name", "join_code", "organization_type", "parent_company_id",
	"location", "description", "created_at", "updated_at",
}

type row struct {
	ID               uuid.UUID  `db:"id"`
	Name             string     `db:"name"`
	JoinCode         string     `db:"join_code"`
	OrganizationType string     `db:"organization_type"`
	ParentCompanyID  *uuid.UUID `db:"parent_company_id"`
	Location         *string    `db:"location"`
	Description      *string    `db:"description"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Company {
	return domain.Company{
		ID:               r.ID,
		Name:             r.Name,
		JoinCode:         r.JoinCode,
		OrganizationType: domain.OrganizationType(r.OrganizationType),
		ParentCompanyID:  r.ParentCompanyID,
		Location:         r.Location,
		Description:      r.Description,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new company repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a company by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByJoinCode returns the company with the given (already normalized) join code.
func (r *Repo) GetByJoinCode(ctx context.Context, code string) (*domain.Company, error) {
	return r.getOne(ctx, sq.Eq{"join_code": code}, code)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.Company, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build company query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "company", key)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("company %v: %w", key, domain.ErrNotFound)
	}

	c := rows[0].toDomain()
	return &c, nil
}

// GetByIDs returns the companies with the given ids. Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Company, error) {
	if len(ids) == 0 {
		return []domain.Company{}, nil
	}
	return r.list(ctx, sq.Eq{"id": ids}, "name ASC, id ASC")
}

// ListChildren returns the direct children of every company in parentIDs.
func (r *Repo) ListChildren(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Company, error) {
	if len(parentIDs) == 0 {
		return []domain.Company{}, nil
	}
	return r.list(ctx, sq.Eq{"parent_company_id": parentIDs}, "name ASC, id ASC")
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer, orderBy string) ([]domain.Company, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy(orderBy).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build company query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "companies", "list")
	}

	out := make([]domain.Company, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// ExistsByJoinCode reports whether any company already uses code.
func (r *Repo) ExistsByJoinCode(ctx context.Context, code string) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where(sq.Eq{"join_code": code}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build join code query: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "company join code", code)
	}
	return exists, nil
}

// Create inserts c. A join code already held by another company yields
// domain.ErrJoinCodeTaken without aborting the surrounding transaction.
func (r *Repo) Create(ctx context.Context, c domain.Company) (*domain.Company, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.Name, c.JoinCode, c.OrganizationType.String(), c.ParentCompanyID,
			c.Location, c.Description, c.CreatedAt, c.UpdatedAt).
		Suffix("ON CONFLICT (join_code) DO NOTHING RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build company insert: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		if postgres.IsUniqueViolation(err, joinCodeConstraint) {
			return nil, fmt.Errorf("company %s: %w", c.ID, domain.ErrJoinCodeTaken)
		}
		return nil, postgres.MapError(err, "company", c.ID)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("company %s: %w", c.ID, domain.ErrJoinCodeTaken)
	}

	created := rows[0].toDomain()
	return &created, nil
}

// UpdateDetails changes the editable descriptive fields of a company.
// Nil arguments leave the column unchanged.
func (r *Repo) UpdateDetails(ctx context.Context, id uuid.UUID, name, location, description *string) (*domain.Company, error) {
	b := postgres.Builder().
		Update(table).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())
	if name != nil {
		b = b.Set("name", *name)
	}
	if location != nil {
		b = b.Set("location", *location)
	}
	if description != nil {
		b = b.Set("description", *description)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build company update: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("company %s: %w", id, domain.ErrNotFound)
	}

	c := rows[0].toDomain()
	return &c, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}
