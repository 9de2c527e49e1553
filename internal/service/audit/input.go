package audit

import (
	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

// AppendInput holds one audit record before it is stamped.
type AppendInput struct {
	Action           domain.AuditAction
	UserID           uuid.UUID
	CompanyID        uuid.UUID
	ItemID           *uuid.UUID
	ItemName         *string
	PreviousQuantity *int
	NewQuantity      *int
	Note             *string
}

// Validate checks all fields and collects all errors.
func (i AppendInput) Validate() error {
	var errs []domain.FieldError

	if !i.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "invalid value"})
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if i.Action == domain.AuditActionUpdateQuantity {
		if i.PreviousQuantity == nil {
			errs = append(errs, domain.FieldError{Field: "previous_quantity", Message: "required for UPDATE_QUANTITY"})
		}
		if i.NewQuantity == nil {
			errs = append(errs, domain.FieldError{Field: "new_quantity", Message: "required for UPDATE_QUANTITY"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Noted builds an input for a tenancy action carrying an item name and note.
func Noted(action domain.AuditAction, userID, companyID uuid.UUID, itemName, note string) AppendInput {
	return AppendInput{
		Action:    action,
		UserID:    userID,
		CompanyID: companyID,
		ItemName:  &itemName,
		Note:      &note,
	}
}
