// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// secretRecordRepository is the SQLite implementation of
// [SecretRecordRepository] over the "keys" table.
type secretRecordRepository struct {
	*DB
	logger *logger.Logger
}

// NewSecretRecordRepository constructs a [SecretRecordRepository] backed by
// the provided database connection.
func NewSecretRecordRepository(db *DB, logger *logger.Logger) SecretRecordRepository {
	return &secretRecordRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *secretRecordRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func (r *secretRecordRepository) UpsertSecret(ctx context.Context, rec models.SecretRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertSecret, rec.Service, rec.User, rec.Ciphertext, rec.Nonce, rec.CreatedAt)
	if err != nil {
		log.Err(err).
			Str("func", "secretRecordRepository.UpsertSecret").
			Str("service", rec.Service).
			Str("user", rec.User).
			Msg("failed to execute upsert for secret record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *secretRecordRepository) GetSecret(ctx context.Context, service, user string) (models.SecretRecord, error) {
	log := logger.FromContext(ctx)

	var rec models.SecretRecord
	err := r.DB.QueryRowContext(ctx, getSecret, service, user).Scan(
		&rec.Service,
		&rec.User,
		&rec.Ciphertext,
		&rec.Nonce,
		&rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SecretRecord{}, ErrSecretRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "secretRecordRepository.GetSecret").
			Str("service", service).
			Str("user", user).
			Msg("failed to scan secret record row")
		return models.SecretRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *secretRecordRepository) DeleteSecret(ctx context.Context, service, user string) (bool, error) {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, deleteSecret, service, user)
	if err != nil {
		log.Err(err).
			Str("func", "secretRecordRepository.DeleteSecret").
			Str("service", service).
			Str("user", user).
			Msg("failed to delete secret record")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
