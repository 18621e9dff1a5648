// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SecretRecordRepository persists sealed secrets of the derived secret
// store, one row per (service, user).
type SecretRecordRepository interface {
	// Ping reports whether the database is reachable.
	Ping(ctx context.Context) error
	// UpsertSecret inserts rec or replaces the existing row (last write wins).
	UpsertSecret(ctx context.Context, rec models.SecretRecord) error
	// GetSecret returns [ErrSecretRecordNotFound] when no row exists.
	GetSecret(ctx context.Context, service, user string) (models.SecretRecord, error)
	// DeleteSecret reports whether a row was removed.
	DeleteSecret(ctx context.Context, service, user string) (bool, error)
}

// ModelRepository persists the model configuration collection.
type ModelRepository interface {
	// ReplaceModels atomically replaces the whole collection, keeping order.
	ReplaceModels(ctx context.Context, items []models.Model) error
	// ListModels returns the collection in saved order.
	ListModels(ctx context.Context) ([]models.Model, error)
}

// LocalPreferences is the non-secret local state kept next to the databases.
type LocalPreferences interface {
	// DerivationSeed returns the seed and the fingerprint of the derivation
	// input it was created with, or [ErrSeedNotFound].
	DerivationSeed() (seed, fingerprint []byte, err error)
	SaveDerivationSeed(seed, fingerprint []byte) error
	// UpdateDerivationFingerprint records a new fingerprint for the
	// existing seed.
	UpdateDerivationFingerprint(fingerprint []byte) error
	SecurityWarningDismissed() bool
	SetSecurityWarningDismissed(dismissed bool) error
}
