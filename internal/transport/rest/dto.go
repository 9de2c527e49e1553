package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
)

type companyResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	JoinCode         string  `json:"joinCode"`
	OrganizationType string  `json:"organizationType"`
	ParentCompanyID  *string `json:"parentCompanyId"`
	Location         *string `json:"location,omitempty"`
	Description      *string `json:"description,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

type userResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	CompanyID *string `json:"companyId"`
}

type visibleCompanyResponse struct {
	companyResponse
	IsCurrent bool `json:"isCurrent"`
}

type orgNodeResponse struct {
	companyResponse
	Depth           int               `json:"depth"`
	UserCount       int               `json:"userCount"`
	DescendantCount int               `json:"descendantCount"`
	Truncated       bool              `json:"truncated,omitempty"`
	Children        []orgNodeResponse `json:"children"`
}

type auditEntryResponse struct {
	ID               string  `json:"id"`
	Action           string  `json:"action"`
	UserID           string  `json:"userId"`
	CompanyID        string  `json:"companyId"`
	ItemID           *string `json:"itemId,omitempty"`
	ItemName         *string `json:"itemName,omitempty"`
	QuantityChange   *int    `json:"quantityChange,omitempty"`
	PreviousQuantity *int    `json:"previousQuantity,omitempty"`
	NewQuantity      *int    `json:"newQuantity,omitempty"`
	Note             *string `json:"note,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:               c.ID.String(),
		Name:             c.Name,
		JoinCode:         c.JoinCode,
		OrganizationType: c.OrganizationType.String(),
		ParentCompanyID:  optionalID(c.ParentCompanyID),
		Location:         c.Location,
		Description:      c.Description,
		CreatedAt:        timestamp(c.CreatedAt),
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		CompanyID: optionalID(u.CompanyID),
	}
}

func toVisibleCompanies(list []domain.VisibleCompany) []visibleCompanyResponse {
	out := make([]visibleCompanyResponse, 0, len(list))
	for i := range list {
		out = append(out, visibleCompanyResponse{
			companyResponse: toCompanyResponse(&list[i].Company),
			IsCurrent:       list[i].IsCurrent,
		})
	}
	return out
}

// toOrgNode nests the flat tree for the client, children ordered by name.
func toOrgNode(tree *domain.OrgTree, n *domain.OrgNode) orgNodeResponse {
	resp := orgNodeResponse{
		companyResponse: toCompanyResponse(&n.Company),
		Depth:           n.Depth,
		UserCount:       n.UserCount,
		DescendantCount: n.DescendantCount,
		Truncated:       n.Truncated,
		Children:        []orgNodeResponse{},
	}
	for _, child := range tree.Children(n.Company.ID) {
		resp.Children = append(resp.Children, toOrgNode(tree, child))
	}
	return resp
}

func toAuditEntries(entries []domain.AuditEntry) []auditEntryResponse {
	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditEntryResponse{
			ID:               e.ID.String(),
			Action:           e.Action.String(),
			UserID:           e.UserID.String(),
			CompanyID:        e.CompanyID.String(),
			ItemID:           optionalID(e.ItemID),
			ItemName:         e.ItemName,
			QuantityChange:   e.QuantityChange,
			PreviousQuantity: e.PreviousQuantity,
			NewQuantity:      e.NewQuantity,
			Note:             e.Note,
			CreatedAt:        timestamp(e.CreatedAt),
		})
	}
	return out
}
