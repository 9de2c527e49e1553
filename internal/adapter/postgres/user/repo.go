// Package user implements the user repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{"id", "email", "name", "role", "company_id", "created_at", "updated_at"}

type row struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	CompanyID *uuid.UUID `db:"company_id"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      domain.UserRole(r.Role),
		CompanyID: r.CompanyID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type credentialsRow struct {
	row
	PasswordHash string `db:"password_hash"`
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email}, email)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("user %v: %w", key, domain.ErrNotFound)
	}

	u := rows[0].toDomain()
	return &u, nil
}

// GetCredentials returns the user with the given email and their password hash.
func (r *Repo) GetCredentials(ctx context.Context, email string) (*domain.User, string, error) {
	query, args, err := postgres.Builder().
		Select(append(columns[:len(columns):len(columns)], "password_hash")...).
		From(table).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("build credentials query: %w", err)
	}

	var rows []credentialsRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, "", postgres.MapError(err, "user", email)
	}
	if len(rows) == 0 {
		return nil, "", fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}

	u := rows[0].toDomain()
	return &u, rows[0].PasswordHash, nil
}

// Create inserts u with the given password hash. A taken email yields
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User, passwordHash string) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "email", "name", "password_hash", "role", "company_id", "created_at", "updated_at").
		Values(u.ID, u.Email, u.Name, passwordHash, u.Role.String(), u.CompanyID, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("user %s: insert returned no row", u.ID)
	}

	created := rows[0].toDomain()
	return &created, nil
}

// Affiliate attaches an unaffiliated user to companyID with role. It fails
// with domain.ErrAlreadyAffiliated if the user gained a company in the meantime.
func (r *Repo) Affiliate(ctx context.Context, id, companyID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	u, err := r.update(ctx, id,
		map[string]any{"company_id": companyID, "role": role.String()},
		sq.Eq{"company_id": nil},
	)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, r.missingOr(ctx, id, domain.ErrAlreadyAffiliated)
	}
	return u, nil
}

// Reassign moves a user from one company to another, keeping their role.
// It fails with domain.ErrConflict if the user is no longer in from.
func (r *Repo) Reassign(ctx context.Context, id, from, to uuid.UUID) (*domain.User, error) {
	u, err := r.update(ctx, id, map[string]any{"company_id": to}, sq.Eq{"company_id": from})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, r.missingOr(ctx, id, fmt.Errorf("user %s changed company concurrently: %w", id, domain.ErrConflict))
	}
	return u, nil
}

// UpdateRole sets the role of a user who is a member of companyID.
func (r *Repo) UpdateRole(ctx context.Context, id, companyID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	u, err := r.update(ctx, id, map[string]any{"role": role.String()}, sq.Eq{"company_id": companyID})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrMemberNotFound)
	}
	return u, nil
}

// Detach removes a member of companyID from it and resets their role to USER.
func (r *Repo) Detach(ctx context.Context, id, companyID uuid.UUID) (*domain.User, error) {
	u, err := r.update(ctx, id,
		map[string]any{"company_id": nil, "role": domain.UserRoleUser.String()},
		sq.Eq{"company_id": companyID},
	)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrMemberNotFound)
	}
	return u, nil
}

// update applies set to user id when guard holds. It returns nil, nil when
// no row matched.
func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any, guard sq.Sqlizer) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		Where(guard).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	u := rows[0].toDomain()
	return &u, nil
}

func (r *Repo) missingOr(ctx context.Context, id uuid.UUID, err error) error {
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return getErr
	}
	return err
}

// ListByCompany returns the members of companyID ordered by join time.
func (r *Repo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build member query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "company members", companyID)
	}

	out := make([]domain.User, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

type countRow struct {
	CompanyID uuid.UUID `db:"company_id"`
	Count     int       `db:"count"`
}

// CountByCompanies returns the number of current members of each company in
// ids. Companies without members are absent from the result.
func (r *Repo) CountByCompanies(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := postgres.Builder().
		Select("company_id", "count(*) AS count").
		From(table).
		Where(sq.Eq{"company_id": ids}).
		GroupBy("company_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build member count query: %w", err)
	}

	var rows []countRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "member counts", len(ids))
	}
	for _, rw := range rows {
		out[rw.CompanyID] = rw.Count
	}
	return out, nil
}
