package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrations returns the schema migrations as a filesystem rooted at the
// migrations directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		panic(fmt.Sprintf("postgres: migrations fs: %v", err))
	}
	return sub
}

// NewMigrator returns a goose provider over db using the embedded migrations.
func NewMigrator(db *sql.DB) (*goose.Provider, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, Migrations())
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, nil
}

// Migrate applies all pending migrations using a database/sql handle opened
// over the pool's configuration.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := NewMigrator(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// ErrPendingMigrations means the database schema is behind the embedded
// migrations.
var ErrPendingMigrations = errors.New("schema has pending migrations")

// SchemaCheck reports whether every embedded migration has been applied.
type SchemaCheck struct {
	provider *goose.Provider
}

// NewSchemaCheck opens a database/sql handle over pool for goose.
// Close releases it.
func NewSchemaCheck(pool *pgxpool.Pool) (*SchemaCheck, error) {
	provider, err := NewMigrator(stdlib.OpenDBFromPool(pool))
	if err != nil {
		return nil, err
	}
	return &SchemaCheck{provider: provider}, nil
}

// Check returns ErrPendingMigrations when the schema is not current.
func (c *SchemaCheck) Check(ctx context.Context) error {
	pending, err := c.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("goose has pending: %w", err)
	}
	if pending {
		return ErrPendingMigrations
	}
	return nil
}

// Close closes the underlying database/sql handle.
func (c *SchemaCheck) Close() error {
	return c.provider.Close()
}
