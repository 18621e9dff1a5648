// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-keeper/models"
)

const (
	upsertSecret = `INSERT INTO keys (service, user, encrypted_password, iv, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (service, user) DO UPDATE SET
			encrypted_password = excluded.encrypted_password,
			iv = excluded.iv,
			created_at = excluded.created_at;`

	getSecret = `SELECT service, user, encrypted_password, iv, created_at
		FROM keys
		WHERE service = ? AND user = ?;`

	deleteSecret = `DELETE FROM keys
		WHERE service = ? AND user = ?;`
)

const modelsTable = "models"

var modelColumns = []string{
	"id", "position", "nickname", "provider", "model_name", "base_url", "api_key", "created_at", "updated_at",
}

// sqlite uses "?" placeholders
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildListModelsQuery() (string, []any, error) {
	query, args, err := builder.
		Select(modelColumns...).
		From(modelsTable).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteAllModelsQuery() (string, []any, error) {
	query, args, err := builder.Delete(modelsTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// maxModelsPerInsert keeps one INSERT under SQLITE_MAX_VARIABLE_NUMBER,
// which is 999 on older SQLite builds.
const maxModelsPerInsert = 999 / 9

// buildInsertModelsQuery builds one multi-row INSERT; the position of
// items[i] is firstPosition+i.
func buildInsertModelsQuery(items []models.Model, firstPosition int) (string, []any, error) {
	insert := builder.Insert(modelsTable).Columns(modelColumns...)
	for i, m := range items {
		insert = insert.Values(m.ID, firstPosition+i, m.Nickname, m.Provider, m.ModelName, m.BaseURL, m.APIKey, m.CreatedAt, m.UpdatedAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
