package domain

// OrganizationType labels a company's place in an organization. It is
// descriptive only: hierarchy position always comes from ParentCompanyID.
type OrganizationType string

const (
	OrganizationTypeParent     OrganizationType = "PARENT"
	OrganizationTypeSubsidiary OrganizationType = "SUBSIDIARY"
	OrganizationTypeBranch     OrganizationType = "BRANCH"
	OrganizationTypeLocation   OrganizationType = "LOCATION"
	OrganizationTypeDivision   OrganizationType = "DIVISION"
)

func (t OrganizationType) String() string { return string(t) }

func (t OrganizationType) IsValid() bool {
	switch t {
	case OrganizationTypeParent, OrganizationTypeSubsidiary, OrganizationTypeBranch,
		OrganizationTypeLocation, OrganizationTypeDivision:
		return true
	}
	return false
}

// IsChildType reports whether a child organization may be created with t.
func (t OrganizationType) IsChildType() bool {
	return t.IsValid() && t != OrganizationTypeParent
}

// UserRole represents the authorization level of a user inside their current company.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// AuditAction represents the kind of action recorded in the audit trail.
type AuditAction string

const (
	AuditActionCompanySwitch  AuditAction = "COMPANY_SWITCH"
	AuditActionCompanyCreate  AuditAction = "COMPANY_CREATE"
	AuditActionCompanyJoin    AuditAction = "COMPANY_JOIN"
	AuditActionCSVExport      AuditAction = "CSV_EXPORT"
	AuditActionCSVImport      AuditAction = "CSV_IMPORT"
	AuditActionCreateItem     AuditAction = "CREATE_ITEM"
	AuditActionUpdateQuantity AuditAction = "UPDATE_QUANTITY"
	AuditActionUpdated        AuditAction = "UPDATED"
	AuditActionUserInvite     AuditAction = "USER_INVITE"
	AuditActionRoleChange     AuditAction = "ROLE_CHANGE"
	AuditActionUserRemove     AuditAction = "USER_REMOVE"
	AuditActionCompanyUpdate  AuditAction = "COMPANY_UPDATE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCompanySwitch, AuditActionCompanyCreate, AuditActionCompanyJoin,
		AuditActionCSVExport, AuditActionCSVImport, AuditActionCreateItem,
		AuditActionUpdateQuantity, AuditActionUpdated, AuditActionUserInvite,
		AuditActionRoleChange, AuditActionUserRemove, AuditActionCompanyUpdate:
		return true
	}
	return false
}

// IsTenantTransition reports whether a moves a user across a tenant boundary.
func (a AuditAction) IsTenantTransition() bool {
	switch a {
	case AuditActionCompanySwitch, AuditActionCompanyCreate, AuditActionCompanyJoin:
		return true
	}
	return false
}
