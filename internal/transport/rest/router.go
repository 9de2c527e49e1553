package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gearbin/gearbin-backend/internal/transport/middleware"
)

// Router assembles the HTTP surface. Outer wraps the whole mux (request ids,
// panics, CORS preflights); Inner runs after route matching so it sees the
// route template. AuthLimit and JoinLimit guard the routes that take
// credentials or join codes.
type Router struct {
	Auth      *AuthHandler
	Companies *CompanyHandler
	Admin     *AdminHandler
	Audit     *AuditHandler
	Health    *HealthHandler

	// Metrics is served on MetricsPath when set.
	Metrics     http.Handler
	MetricsPath string

	Outer     []middleware.Middleware
	Inner     []middleware.Middleware
	AuthLimit middleware.Middleware
	JoinLimit middleware.Middleware
}

// Handler builds the routed handler.
func (rt Router) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/live", rt.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", rt.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", rt.Health.Health).Methods(http.MethodGet)
	if rt.Metrics != nil {
		r.Handle(rt.MetricsPath, rt.Metrics).Methods(http.MethodGet)
	}

	inner := middleware.Chain(rt.Inner...)
	api := r.NewRoute().Subrouter()
	for _, mw := range rt.Inner {
		api.Use(mux.MiddlewareFunc(mw))
	}

	authLimit := orPass(rt.AuthLimit)
	joinLimit := orPass(rt.JoinLimit)

	api.Handle("/auth/signup", authLimit(http.HandlerFunc(rt.Auth.Signup))).Methods(http.MethodPost)
	api.Handle("/auth/login", authLimit(http.HandlerFunc(rt.Auth.Login))).Methods(http.MethodPost)

	api.HandleFunc("/me/companies", rt.Companies.MyCompanies).Methods(http.MethodGet)
	api.HandleFunc("/companies", rt.Companies.Create).Methods(http.MethodPost)
	api.Handle("/companies/join", joinLimit(http.HandlerFunc(rt.Companies.Join))).Methods(http.MethodPost)
	api.Handle("/companies/switch", joinLimit(http.HandlerFunc(rt.Companies.Switch))).Methods(http.MethodPost)

	api.HandleFunc("/admin/child-companies", rt.Admin.CreateChild).Methods(http.MethodPost)
	api.HandleFunc("/admin/organization-tree", rt.Admin.OrganizationTree).Methods(http.MethodGet)
	api.HandleFunc("/admin/company", rt.Admin.GetCompany).Methods(http.MethodGet)
	api.HandleFunc("/admin/company", rt.Admin.UpdateCompany).Methods(http.MethodPatch)
	api.HandleFunc("/admin/users/{id}/role", rt.Admin.SetMemberRole).Methods(http.MethodPatch)
	api.HandleFunc("/admin/users/{id}", rt.Admin.RemoveMember).Methods(http.MethodDelete)
	api.HandleFunc("/admin/invitations", rt.Admin.Invite).Methods(http.MethodPost)

	api.HandleFunc("/items/{id}/audit", rt.Audit.ItemHistory).Methods(http.MethodGet)

	r.NotFoundHandler = inner(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	}))
	r.MethodNotAllowedHandler = inner(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}))

	return middleware.Chain(rt.Outer...)(r)
}

func orPass(mw middleware.Middleware) middleware.Middleware {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
