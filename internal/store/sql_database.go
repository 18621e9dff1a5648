// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/migrations"
)

// DB is an SQLite connection bound to one migration set.
type DB struct {
	*sql.DB
	set    migrations.Set
	logger *logger.Logger
}

// Migrate brings the schema of the connection's migration set up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.set)
}
