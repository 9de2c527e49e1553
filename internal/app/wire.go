package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gearbin/gearbin-backend/internal/adapter/postgres"
	auditrepo "github.com/gearbin/gearbin-backend/internal/adapter/postgres/audit"
	"github.com/gearbin/gearbin-backend/internal/adapter/postgres/company"
	"github.com/gearbin/gearbin-backend/internal/adapter/postgres/user"
	"github.com/gearbin/gearbin-backend/internal/auth"
	"github.com/gearbin/gearbin-backend/internal/config"
	"github.com/gearbin/gearbin-backend/internal/metrics"
	"github.com/gearbin/gearbin-backend/internal/service/access"
	"github.com/gearbin/gearbin-backend/internal/service/admin"
	"github.com/gearbin/gearbin-backend/internal/service/audit"
	authsvc "github.com/gearbin/gearbin-backend/internal/service/auth"
	"github.com/gearbin/gearbin-backend/internal/service/directory"
	"github.com/gearbin/gearbin-backend/internal/service/hierarchy"
	"github.com/gearbin/gearbin-backend/internal/service/tenancy"
	"github.com/gearbin/gearbin-backend/internal/transport/middleware"
	"github.com/gearbin/gearbin-backend/internal/transport/rest"
)

const (
	rateLimitCleanup = time.Minute
	healthTimeout    = 3 * time.Second
)

// App is the wired HTTP surface and the resources it holds.
type App struct {
	Handler http.Handler
	closers []func()
}

// Close releases background resources in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Build wires repositories, services and the router over pool.
func Build(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, m *metrics.Metrics) (*App, error) {
	app := &App{}

	companies := company.New(pool)
	users := user.New(pool)
	entries := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	auditSvc := audit.NewService(logger, entries, users)
	directorySvc := directory.NewService(logger, companies, directory.RandomCodes{}, cfg.Tenancy.JoinCodeMaxAttempts, m)
	hierarchySvc := hierarchy.NewService(logger, companies, users, directorySvc, auditSvc, tx, hierarchy.Limits{
		MaxAncestorDepth: cfg.Tenancy.MaxAncestorDepth,
		MaxTreeDepth:     cfg.Tenancy.MaxTreeDepth,
	}, m)
	accessSvc := access.NewService(logger, users, companies, hierarchySvc, auditSvc, m)
	tenancySvc := tenancy.NewService(logger, users, directorySvc, hierarchySvc, auditSvc, tx, m)
	adminSvc := admin.NewService(logger, users, companies, auditSvc, tx)

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tenancySvc, auth.NewHasher(cfg.Auth.BcryptCost), tokens, m)

	schema, err := postgres.NewSchemaCheck(pool)
	if err != nil {
		return nil, fmt.Errorf("schema check: %w", err)
	}
	app.closers = append(app.closers, func() {
		if err := schema.Close(); err != nil {
			logger.Warn("close schema check", slog.String("error", err.Error()))
		}
	})

	limiter := middleware.NewRateLimiter(rateLimitCleanup, m)
	app.closers = append(app.closers, limiter.Stop)

	router := rest.Router{
		Auth:      rest.NewAuthHandler(authService, logger),
		Companies: rest.NewCompanyHandler(tenancySvc, accessSvc, logger),
		Admin:     rest.NewAdminHandler(adminSvc, tenancySvc, hierarchySvc, logger),
		Audit:     rest.NewAuditHandler(auditSvc, logger),
		Health: rest.NewHealthHandler(BuildVersion(), healthTimeout,
			rest.HealthCheck{Name: "database", Check: pool.Ping},
			rest.HealthCheck{Name: "schema", Check: schema.Check},
		),
		Outer: []middleware.Middleware{
			middleware.RequestID(),
			middleware.ClientIP(),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		},
		// Metrics sits outside Auth so rejected tokens are still counted;
		// Logger sits inside it to see the caller.
		Inner: []middleware.Middleware{
			middleware.Metrics(m),
			middleware.Auth(authService),
			middleware.Logger(logger),
		},
		AuthLimit: limiter.Limit("auth", cfg.RateLimit.AuthPerMinute),
		JoinLimit: limiter.Limit("join", cfg.RateLimit.JoinPerMinute),
	}
	if cfg.Metrics.Enabled {
		router.Metrics = m.Handler()
		router.MetricsPath = cfg.Metrics.Path
	}

	app.Handler = router.Handler()
	return app, nil
}
