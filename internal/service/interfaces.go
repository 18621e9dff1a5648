// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
	"github.com/MKhiriev/go-key-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MasterKeyProvider resolves the master key for a batch of records.
type MasterKeyProvider interface {
	// Get returns "" and a nil error when no master key exists.
	Get(ctx context.Context) (string, error)
}

// MasterKeyManager owns the lifecycle of the installation's master key: a
// 64-character hex string kept in the selected secret store.
type MasterKeyManager interface {
	MasterKeyProvider

	// Generate returns a fresh random key in canonical form.
	Generate() (string, error)
	// Exists reports whether a non-empty key is stored. Store errors count
	// as "does not exist".
	Exists(ctx context.Context) bool
	// Store validates key and writes it, replacing any previous key.
	Store(ctx context.Context, key string) error
	// Initialize returns the stored key or creates one. It never replaces
	// an existing key.
	Initialize(ctx context.Context) (string, error)
	// Export returns the stored key for backup, or ErrMasterKeyNotFound.
	Export(ctx context.Context) (string, error)
	// Backend reports which secret store holds the key.
	Backend() secretstore.Kind
}

// ModelStorage persists the model configuration collection with encrypted
// API keys.
type ModelStorage interface {
	// SaveModels validates, encrypts and replaces the stored collection.
	SaveModels(ctx context.Context, items []models.Model) ([]models.Model, error)
	// LoadModels decrypts every stored model; a model whose key cannot be
	// decrypted is returned with an empty key and its KeyErr set.
	LoadModels(ctx context.Context) ([]models.LoadedModel, error)
}

// SecurityAdvisory is the dismissible notice shown on hosts that use the
// derived secret store.
type SecurityAdvisory interface {
	// ShouldShow reports whether the notice applies and was not dismissed.
	ShouldShow() bool
	Message() string
	// Dismiss records that the user acknowledged the notice.
	Dismiss() error
	// Raise logs the notice when it should be shown.
	Raise(ctx context.Context)
}
