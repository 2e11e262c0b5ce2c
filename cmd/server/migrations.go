package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// runMigrations applies any pending schema migrations at startup. The
// migration files are embedded so the binary is self-contained.
func (app *application) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(embeddedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, app.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, app.db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	app.logger.Info("database schema up to date", "version", version)
	return nil
}
