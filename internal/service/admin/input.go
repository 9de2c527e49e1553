package admin

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/directory"
)

// UpdateCompanyInput replaces the editable details of a company. Nil
// location or description clears the field.
type UpdateCompanyInput struct {
	Name        string
	Location    *string
	Description *string
}

func (i UpdateCompanyInput) Validate() error {
	if errs := directory.ValidateCompanyName(i.Name); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

type SetRoleInput struct {
	UserID uuid.UUID
	Role   domain.UserRole
}

func (i SetRoleInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be ADMIN or USER"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

type InviteInput struct {
	Email string
}

func (i InviteInput) Validate() error {
	email := strings.TrimSpace(i.Email)
	if email == "" {
		return domain.NewValidationError("email", "required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.NewValidationError("email", "invalid email address")
	}
	return nil
}

func (i InviteInput) normalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(i.Email))
}

// clean trims s and maps blank values to nil.
func clean(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
