package auth

import (
	"net/mail"
	"strings"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordLength = 72
)

// Company modes accepted at registration.
const (
	ModeCreate = "create"
	ModeJoin   = "join"
)

// RegisterInput holds the signup form. CompanyName is used in create mode,
// JoinCode in join mode.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	CompanyMode     string
	CompanyName     string
	JoinCode        string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = append(errs, validateEmail(i.Email)...)

	switch {
	case len(i.Password) < minPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(i.Password) > maxPasswordLength:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	if i.ConfirmPassword != i.Password {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "passwords don't match"})
	}

	switch i.CompanyMode {
	case ModeCreate:
		if strings.TrimSpace(i.CompanyName) == "" {
			errs = append(errs, domain.FieldError{Field: "company_name", Message: "required"})
		}
	case ModeJoin:
		if strings.TrimSpace(i.JoinCode) == "" {
			errs = append(errs, domain.FieldError{Field: "join_code", Message: "required"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "company_mode", Message: "must be create or join"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email address"}}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
