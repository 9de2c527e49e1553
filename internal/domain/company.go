package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// JoinCodeLength is the fixed length of every join code.
	JoinCodeLength = 8
	// JoinCodeAlphabet is the set of symbols a join code is drawn from.
	JoinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// MaxCompanyNameLength bounds company names (in runes).
	MaxCompanyNameLength = 100
)

// Company is a tenant: the unit of data isolation for inventory.
// Companies form a forest through ParentCompanyID.
type Company struct {
	ID               uuid.UUID
	Name             string
	JoinCode         string
	OrganizationType OrganizationType
	ParentCompanyID  *uuid.UUID
	Location         *string
	Description      *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsRoot reports whether the company has no parent.
func (c *Company) IsRoot() bool {
	return c.ParentCompanyID == nil
}

// VisibleCompany is a company the user may see or select, flagged when it is
// the user's current tenant.
type VisibleCompany struct {
	Company
	IsCurrent bool
}

// NormalizeJoinCode trims whitespace and upper-cases the ASCII letters of a
// user-supplied code. Other runes are left as is so they fail the shape check.
func NormalizeJoinCode(code string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, strings.TrimSpace(code))
}

// IsValidJoinCode reports whether code has the shape of a join code.
// It does not normalize.
func IsValidJoinCode(code string) bool {
	if len(code) != JoinCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
