package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Each one is an error category the
// transport layer maps to a distinct status.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrIntegrity     = errors.New("integrity error")
)

// Tenancy failures with stable, user-facing messages.
var (
	ErrInvalidJoinCode    = NewKindError(ErrNotFound, "invalid join code")
	ErrAlreadyAffiliated  = NewKindError(ErrConflict, "user already belongs to a company")
	ErrNotAffiliated      = NewKindError(ErrConflict, "user does not belong to a company")
	ErrAlreadyMember      = NewKindError(ErrConflict, "you are already in this company")
	ErrSelfDemotion       = NewKindError(ErrConflict, "cannot change your own admin role")
	ErrSelfRemoval        = NewKindError(ErrConflict, "cannot remove yourself from the company")
	ErrAdminRequired      = NewKindError(ErrForbidden, "admin access required")
	ErrNotParentAdmin     = NewKindError(ErrForbidden, "you can only create child organizations for your own company")
	ErrCompanyNotFound    = NewKindError(ErrNotFound, "company not found")
	ErrMemberNotFound     = NewKindError(ErrNotFound, "user not found or not in your company")
	ErrHierarchyCorrupted = NewKindError(ErrIntegrity, "organization hierarchy is corrupted")
	ErrJoinCodeTaken      = NewKindError(ErrAlreadyExists, "join code already in use")
	ErrInviteeIsMember    = NewKindError(ErrConflict, "user is already part of your company")
	ErrInviteeAffiliated  = NewKindError(ErrConflict, "user already belongs to another company")
	ErrEmailTaken         = NewKindError(ErrAlreadyExists, "user with this email already exists")
)

// ErrJoinCodeExhausted is returned when no free join code was found within the
// configured attempt budget. It is an internal failure, not a caller mistake.
var ErrJoinCodeExhausted = errors.New("join code generation exhausted")

// KindError is a specific failure that belongs to one of the sentinel
// categories above. Error returns the message meant for end users.
type KindError struct {
	kind    error
	message string
}

// NewKindError creates a KindError in the given category.
func NewKindError(kind error, message string) *KindError {
	return &KindError{kind: kind, message: message}
}

func (e *KindError) Error() string { return e.message }

func (e *KindError) Unwrap() error { return e.kind }

// Message returns the user-facing message of the first KindError in err's
// chain, or fallback when there is none.
func Message(err error, fallback string) string {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.message
	}
	var ve *ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return ve.Errors[0].Field + ": " + ve.Errors[0].Message
	}
	return fallback
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
