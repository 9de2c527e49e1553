package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gearbin/gearbin-backend/internal/domain"
	"github.com/gearbin/gearbin-backend/internal/service/tenancy"
)

type tenancyService interface {
	CreateCompany(ctx context.Context, in tenancy.CreateCompanyInput) (*tenancy.Affiliation, error)
	JoinCompany(ctx context.Context, in tenancy.JoinCompanyInput) (*tenancy.Affiliation, error)
	SwitchCompany(ctx context.Context, in tenancy.SwitchCompanyInput) (*tenancy.Affiliation, error)
}

type visibilityService interface {
	VisibleCompanies(ctx context.Context) ([]domain.VisibleCompany, error)
}

//go:generate moq -out tenancy_service_mock_test.go -pkg rest . tenancyService
//go:generate moq -out visibility_service_mock_test.go -pkg rest . visibilityService

// CompanyHandler serves the caller's own company transitions and the
// company selector.
type CompanyHandler struct {
	tenancy tenancyService
	access  visibilityService
	log     *slog.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(tenancy tenancyService, access visibilityService, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{tenancy: tenancy, access: access, log: logger.With("handler", "company")}
}

type createCompanyRequest struct {
	Name        string  `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

type joinCodeRequest struct {
	JoinCode string `json:"joinCode"`
}

type affiliationResponse struct {
	User    userResponse    `json:"user"`
	Company companyResponse `json:"company"`
}

// MyCompanies handles GET /me/companies.
func (h *CompanyHandler) MyCompanies(w http.ResponseWriter, r *http.Request) {
	list, err := h.access.VisibleCompanies(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"companies": toVisibleCompanies(list)})
}

// Create handles POST /companies.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	aff, err := h.tenancy.CreateCompany(r.Context(), tenancy.CreateCompanyInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAffiliationResponse(aff))
}

// Join handles POST /companies/join.
func (h *CompanyHandler) Join(w http.ResponseWriter, r *http.Request) {
	h.byJoinCode(w, r, h.tenancy.JoinCompany)
}

// Switch handles POST /companies/switch.
func (h *CompanyHandler) Switch(w http.ResponseWriter, r *http.Request) {
	h.byJoinCode(w, r, h.tenancy.SwitchCompany)
}

func (h *CompanyHandler) byJoinCode(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, tenancy.JoinCodeInput) (*tenancy.Affiliation, error),
) {
	var req joinCodeRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	aff, err := op(r.Context(), tenancy.JoinCodeInput{JoinCode: req.JoinCode})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAffiliationResponse(aff))
}

func toAffiliationResponse(aff *tenancy.Affiliation) affiliationResponse {
	return affiliationResponse{
		User:    toUserResponse(aff.User),
		Company: toCompanyResponse(aff.Company),
	}
}
