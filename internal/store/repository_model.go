// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// modelRepository is the SQLite implementation of [ModelRepository]. The
// api_key column only ever receives values the caller already encrypted.
type modelRepository struct {
	*DB
	logger *logger.Logger
}

// NewModelRepository constructs a [ModelRepository] backed by db.
func NewModelRepository(db *DB, logger *logger.Logger) ModelRepository {
	return &modelRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceModels deletes the stored collection and inserts items in a single
// transaction, in batches of at most maxModelsPerInsert rows. An empty items
// slice clears the collection.
func (r *modelRepository) ReplaceModels(ctx context.Context, items []models.Model) (err error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "modelRepository.ReplaceModels").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query, args, err := buildDeleteAllModelsQuery()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "modelRepository.ReplaceModels").Msg("failed to clear models")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(items); start += maxModelsPerInsert {
		chunk := items[start:min(start+maxModelsPerInsert, len(items))]
		query, args, err = buildInsertModelsQuery(chunk, start)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "modelRepository.ReplaceModels").
				Int("count", len(items)).
				Int("offset", start).
				Msg("failed to insert models")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "modelRepository.ReplaceModels").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *modelRepository) ListModels(ctx context.Context) ([]models.Model, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListModelsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "modelRepository.ListModels").Msg("failed to execute query for listing models")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Model, 0, 8)
	for rows.Next() {
		var (
			m        models.Model
			position int
		)
		scanErr := rows.Scan(
			&m.ID,
			&position,
			&m.Nickname,
			&m.Provider,
			&m.ModelName,
			&m.BaseURL,
			&m.APIKey,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "modelRepository.ListModels").Msg("failed to scan model row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "modelRepository.ListModels").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}
