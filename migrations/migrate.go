// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed secrets/*.sql models/*.sql
var embedMigrations embed.FS

// Set names a group of migrations applied to one database file.
type Set string

const (
	// Secrets holds the derived secret store schema (table keys).
	Secrets Set = "secrets"
	// Models holds the model configuration schema (table models).
	Models Set = "models"
)

var ErrNilDB = errors.New("db is nil")

// Migrate applies all pending migrations of set to db.
func Migrate(ctx context.Context, db *sql.DB, set Set) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	fsys, err := fs.Sub(embedMigrations, string(set))
	if err != nil {
		return fmt.Errorf("migration error opening set %q: %w", set, err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
