// Command promote makes a user an admin of the company they currently
// belong to. It is used to bootstrap the first admin of a tenant.
//
// Usage:
//
//	promote --email=user@example.com
//
// Exit codes: 0 = success, 1 = error or nothing to promote.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gearbin/gearbin-backend/internal/adapter/postgres"
	"github.com/gearbin/gearbin-backend/internal/app"
	"github.com/gearbin/gearbin-backend/internal/config"
)

const promoteSQL = `
UPDATE users
   SET role = 'ADMIN', updated_at = now()
 WHERE lower(email) = $1
   AND company_id IS NOT NULL
   AND role <> 'ADMIN'`

func main() {
	email := flag.String("email", "", "email of the user to promote")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	normalized := strings.ToLower(strings.TrimSpace(*email))
	tag, err := pool.Exec(ctx, promoteSQL, normalized)
	if err != nil {
		logger.Error("update role", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if tag.RowsAffected() == 0 {
		logger.Warn("nothing promoted: no such user, user has no company, or already admin",
			slog.String("email", normalized))
		os.Exit(1)
	}

	logger.Info("user promoted to admin", slog.String("email", normalized))
}
