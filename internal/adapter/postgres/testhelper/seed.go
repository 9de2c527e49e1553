package testhelper

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// RandomJoinCode returns a well-formed join code. Collisions across a test
// run are possible but vanishingly rare.
func RandomJoinCode() string {
	b := make([]byte, domain.JoinCodeLength)
	for i := range b {
		b[i] = domain.JoinCodeAlphabet[rand.IntN(len(domain.JoinCodeAlphabet))]
	}
	return string(b)
}

// SeedCompany inserts a company under parent (nil for a root) and returns it.
func SeedCompany(t *testing.T, pool *pgxpool.Pool, parent *uuid.UUID) domain.Company {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	typ := domain.OrganizationTypeParent
	if parent != nil {
		typ = domain.OrganizationTypeBranch
	}
	c := domain.Company{
		ID:               uuid.New(),
		Name:             "Company " + uniqueSuffix(),
		JoinCode:         RandomJoinCode(),
		OrganizationType: typ,
		ParentCompanyID:  parent,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO companies (id, name, join_code, organization_type, parent_company_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.JoinCode, string(c.OrganizationType), c.ParentCompanyID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}
	return c
}

// SeedUser inserts a user with the given role and current company.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, companyID *uuid.UUID) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:        uuid.New(),
		Email:     "user-" + suffix + "@example.com",
		Name:      "User " + suffix,
		Role:      role,
		CompanyID: companyID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, company_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Email, u.Name, "x", string(u.Role), u.CompanyID, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedAudit appends an audit entry placing userID in companyID.
func SeedAudit(t *testing.T, pool *pgxpool.Pool, action domain.AuditAction, userID, companyID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO audit_logs (id, action, user_id, company_id, created_at)
		 VALUES ($1, $2, $3, $4, now())`,
		uuid.New(), string(action), userID, companyID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAudit: %v", err)
	}
}
