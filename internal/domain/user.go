package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an application user. CompanyID is the user's single current tenant;
// nil means the user is unaffiliated.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Role      UserRole
	CompanyID *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAffiliated reports whether the user currently belongs to a company.
func (u *User) IsAffiliated() bool {
	return u.CompanyID != nil
}

// IsAdminOf reports whether the user is an admin of exactly companyID.
func (u *User) IsAdminOf(companyID uuid.UUID) bool {
	return u.Role.IsAdmin() && u.CompanyID != nil && *u.CompanyID == companyID
}

// InCompany reports whether the user's current tenant is companyID.
func (u *User) InCompany(companyID uuid.UUID) bool {
	return u.CompanyID != nil && *u.CompanyID == companyID
}
