// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/migrations"
)

// Storages groups the local persistence of the application.
type Storages struct {
	ModelRepository  ModelRepository
	LocalPreferences LocalPreferences

	modelsDB *DB
}

// NewStorages opens the models database and the local preferences file.
// The secrets database is opened lazily by the derived secret store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	prefs, err := NewLocalPreferences(cfg.StatePath)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error loading local preferences")
		return nil, fmt.Errorf("error loading local preferences: %w", err)
	}

	modelsDB, err := NewConnectSQLite(ctx, cfg.ModelsDSN, migrations.Models, log)
	if err != nil {
		return nil, fmt.Errorf("error opening models database: %w", err)
	}

	return &Storages{
		ModelRepository:  NewModelRepository(modelsDB, log),
		LocalPreferences: prefs,
		modelsDB:         modelsDB,
	}, nil
}

// Close releases database connections.
func (s *Storages) Close() error {
	var errs []error
	if s.modelsDB != nil {
		errs = append(errs, s.modelsDB.Close())
	}
	return errors.Join(errs...)
}
