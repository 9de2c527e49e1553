package hierarchy

import (
	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/directory"
)

// CreateChildInput describes a child organization under ParentID.
type CreateChildInput struct {
	ParentID         uuid.UUID
	Name             string
	OrganizationType domain.OrganizationType
	Location         *string
	Description      *string
}

// Validate checks all fields and collects all errors.
func (i CreateChildInput) Validate() error {
	var errs []domain.FieldError

	if i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "required"})
	}
	errs = append(errs, directory.ValidateCompanyName(i.Name)...)
	if !i.OrganizationType.IsChildType() {
		errs = append(errs, domain.FieldError{
			Field:   "organization_type",
			Message: "must be one of SUBSIDIARY, BRANCH, LOCATION, DIVISION",
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateChildInput) draft() directory.CompanyDraft {
	parentID := i.ParentID
	return directory.CompanyDraft{
		Name:             i.Name,
		OrganizationType: i.OrganizationType,
		ParentCompanyID:  &parentID,
		Location:         i.Location,
		Description:      i.Description,
	}
}
