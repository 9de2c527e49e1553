package tenancy

import (
	"net/mail"
	"strings"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/directory"
)

// NewUser is an account about to be created by signup. The password is
// already hashed by the caller.
type NewUser struct {
	Email        string
	Name         string
	PasswordHash string
}

// Validate checks all fields and collects all errors.
func (u NewUser) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(u.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(u.Email)); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}
	if u.PasswordHash == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateCompanyInput names a new top-level company.
type CreateCompanyInput struct {
	Name        string
	Location    *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateCompanyInput) Validate() error {
	if errs := directory.ValidateCompanyName(i.Name); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateCompanyInput) draft() directory.CompanyDraft {
	return directory.CompanyDraft{
		Name:             i.Name,
		OrganizationType: domain.OrganizationTypeParent,
		Location:         i.Location,
		Description:      i.Description,
	}
}

// JoinCodeInput carries a join code as typed by a user.
type JoinCodeInput struct {
	JoinCode string
}

// Validate checks the normalized code has the shape of a join code.
func (i JoinCodeInput) Validate() error {
	if !domain.IsValidJoinCode(domain.NormalizeJoinCode(i.JoinCode)) {
		return domain.NewValidationError("join_code", "must be 8 letters or digits")
	}
	return nil
}

// Inputs of the join-code transitions.
type (
	SignupJoinInput    = JoinCodeInput
	JoinCompanyInput   = JoinCodeInput
	SwitchCompanyInput = JoinCodeInput
)

// SignupCreateInput is CreateCompanyInput used at signup.
type SignupCreateInput = CreateCompanyInput

// CreateChildOrganizationInput describes a child of the caller's company.
type CreateChildOrganizationInput struct {
	Name             string
	OrganizationType domain.OrganizationType
	Location         *string
	Description      *string
}
