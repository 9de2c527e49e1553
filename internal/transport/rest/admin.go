package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/admin"
	"github.com/gearbin/gearbin-backend/internal/service/hierarchy"
	"github.com/gearbin/gearbin-backend/internal/service/tenancy"
)

type adminService interface {
	GetCompany(ctx context.Context) (*admin.CompanyOverview, error)
	UpdateCompany(ctx context.Context, in admin.UpdateCompanyInput) (*domain.Company, error)
	SetMemberRole(ctx context.Context, in admin.SetRoleInput) (*domain.User, error)
	RemoveMember(ctx context.Context, userID uuid.UUID) error
	Invite(ctx context.Context, in admin.InviteInput) (*admin.Invitation, error)
}

type childCreator interface {
	CreateChildOrganization(ctx context.Context, in tenancy.CreateChildOrganizationInput) (*domain.Company, error)
}

type treeViewer interface {
	OrganizationTree(ctx context.Context) (*hierarchy.OrganizationView, error)
}

//go:generate moq -out admin_service_mock_test.go -pkg rest . adminService
//go:generate moq -out child_creator_mock_test.go -pkg rest . childCreator
//go:generate moq -out tree_viewer_mock_test.go -pkg rest . treeViewer

// AdminHandler serves the company administration endpoints.
type AdminHandler struct {
	admin    adminService
	children childCreator
	tree     treeViewer
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(adminSvc adminService, children childCreator, tree treeViewer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		admin:    adminSvc,
		children: children,
		tree:     tree,
		log:      logger.With("handler", "admin"),
	}
}

type createChildRequest struct {
	Name             string  `json:"name"`
	OrganizationType string  `json:"organizationType"`
	Location         *string `json:"location"`
	Description      *string `json:"description"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

type inviteRequest struct {
	Email string `json:"email"`
}

type organizationTreeResponse struct {
	Root             orgNodeResponse `json:"root"`
	TotalCompanies   int             `json:"totalCompanies"`
	CurrentCompanyID string          `json:"currentCompanyId"`
	Role             string          `json:"role"`
}

type companyOverviewResponse struct {
	Company companyResponse `json:"company"`
	Members []userResponse  `json:"members"`
}

type invitationResponse struct {
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	JoinCode    string `json:"joinCode"`
}

// CreateChild handles POST /admin/child-companies.
func (h *AdminHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	var req createChildRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.children.CreateChildOrganization(r.Context(), tenancy.CreateChildOrganizationInput{
		Name:             req.Name,
		OrganizationType: domain.OrganizationType(req.OrganizationType),
		Location:         req.Location,
		Description:      req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCompanyResponse(company))
}

// OrganizationTree handles GET /admin/organization-tree.
func (h *AdminHandler) OrganizationTree(w http.ResponseWriter, r *http.Request) {
	view, err := h.tree.OrganizationTree(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, organizationTreeResponse{
		Root:             toOrgNode(view.Tree, view.Tree.Root()),
		TotalCompanies:   view.Tree.Len(),
		CurrentCompanyID: view.CurrentCompanyID.String(),
		Role:             view.Role.String(),
	})
}

// GetCompany handles GET /admin/company.
func (h *AdminHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	overview, err := h.admin.GetCompany(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	members := make([]userResponse, 0, len(overview.Members))
	for i := range overview.Members {
		members = append(members, toUserResponse(&overview.Members[i]))
	}
	writeJSON(w, http.StatusOK, companyOverviewResponse{
		Company: toCompanyResponse(overview.Company),
		Members: members,
	})
}

// UpdateCompany handles PATCH /admin/company.
func (h *AdminHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.admin.UpdateCompany(r.Context(), admin.UpdateCompanyInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCompanyResponse(company))
}

// SetMemberRole handles PATCH /admin/users/{id}/role.
func (h *AdminHandler) SetMemberRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var req setRoleRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.admin.SetMemberRole(r.Context(), admin.SetRoleInput{
		UserID: userID,
		Role:   domain.UserRole(req.Role),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// RemoveMember handles DELETE /admin/users/{id}.
func (h *AdminHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.admin.RemoveMember(r.Context(), userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Invite handles POST /admin/invitations.
func (h *AdminHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.admin.Invite(r.Context(), admin.InviteInput{Email: req.Email})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, invitationResponse{
		Email:       inv.Email,
		CompanyName: inv.CompanyName,
		JoinCode:    inv.JoinCode,
	})
}
