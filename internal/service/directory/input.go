package directory

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

// CompanyDraft describes a company to be created. The join code is assigned
// by the directory.
type CompanyDraft struct {
	Name             string
	OrganizationType domain.OrganizationType
	ParentCompanyID  *uuid.UUID
	Location         *string
	Description      *string
}

// Validate checks all fields and collects all errors.
func (d CompanyDraft) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, ValidateCompanyName(d.Name)...)
	if !d.OrganizationType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "organization_type", Message: "invalid value"})
	}
	if d.OrganizationType == domain.OrganizationTypeParent && d.ParentCompanyID != nil {
		errs = append(errs, domain.FieldError{Field: "organization_type", Message: "a child organization cannot be PARENT"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ValidateCompanyName checks the trimmed name is 1 to 100 characters.
func ValidateCompanyName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case utf8.RuneCountInString(name) > domain.MaxCompanyNameLength:
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
