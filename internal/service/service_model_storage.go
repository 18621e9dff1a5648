// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
	"github.com/MKhiriev/go-key-keeper/models"
)

// IDGenerator produces record identifiers.
type IDGenerator interface {
	Generate() string
}

// ModelAPIKey is the sensitive field of [models.Model].
var ModelAPIKey = SensitiveField[models.Model]{
	Get: func(m models.Model) string { return m.APIKey },
	Set: func(m models.Model, v string) models.Model {
		m.APIKey = v
		return m
	},
	Label: func(m models.Model) string { return fmt.Sprintf("model %s", m.DisplayName()) },
}

type modelStorage struct {
	repo      store.ModelRepository
	codec     *CredentialBatchCodec[models.Model]
	validator validators.Validator
	ids       IDGenerator
	logger    *logger.Logger
	now       func() time.Time
}

// NewModelStorage wires the model repository to the credential codec.
func NewModelStorage(repo store.ModelRepository, keys MasterKeyProvider, cipher crypto.FieldCipher, validator validators.Validator, ids IDGenerator, log *logger.Logger) ModelStorage {
	if log == nil {
		log = logger.Nop()
	}
	return &modelStorage{
		repo:      repo,
		codec:     NewCredentialBatchCodec(keys, cipher, ModelAPIKey, log),
		validator: validator,
		ids:       ids,
		logger:    log,
		now:       time.Now,
	}
}

// SaveModels returns the collection as stored: ids and timestamps filled
// in, API keys encrypted.
func (s *modelStorage) SaveModels(ctx context.Context, items []models.Model) ([]models.Model, error) {
	if err := s.validator.Validate(ctx, items); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	prepared := make([]models.Model, len(items))
	for i, m := range items {
		if m.ID == "" {
			m.ID = s.ids.Generate()
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		m.UpdatedAt = now
		prepared[i] = m
	}

	encrypted, err := s.codec.Save(ctx, prepared)
	if err != nil {
		return nil, err
	}

	if err = s.repo.ReplaceModels(ctx, encrypted); err != nil {
		return nil, fmt.Errorf("save %d models: %w", len(encrypted), err)
	}
	s.logger.Debug().Str("func", "modelStorage.SaveModels").Int("count", len(encrypted)).Msg("models saved")

	return encrypted, nil
}

func (s *modelStorage) LoadModels(ctx context.Context) ([]models.LoadedModel, error) {
	stored, err := s.repo.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("load models: %w", err)
	}
	if len(stored) == 0 {
		return []models.LoadedModel{}, nil
	}

	loaded := s.codec.Load(ctx, stored)
	out := make([]models.LoadedModel, len(loaded))
	for i, l := range loaded {
		out[i] = models.LoadedModel{Model: l.Record, KeyErr: l.Err}
	}

	return out, nil
}
