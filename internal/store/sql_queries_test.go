// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/models"
)

func TestBuildListModelsQuery(t *testing.T) {
	query, args, err := buildListModelsQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select id, position, nickname, provider, model_name, base_url, api_key, created_at, updated_at")
	require.Contains(t, q, "from models")
	require.Contains(t, q, "order by position asc")
	require.Empty(t, args)
}

func TestBuildDeleteAllModelsQuery(t *testing.T) {
	query, args, err := buildDeleteAllModelsQuery()
	require.NoError(t, err)

	require.Equal(t, "DELETE FROM models", query)
	require.Empty(t, args)
}

func TestBuildInsertModelsQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name       string
		items      []models.Model
		first      int
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:  "single row",
			items: []models.Model{{ID: "a", Provider: "openai", ModelName: "gpt", APIKey: "enc:x", CreatedAt: now, UpdatedAt: now}},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.True(t, strings.HasPrefix(query, "INSERT INTO models"))
				// sqlite placeholders, never $n
				require.NotContains(t, query, "$1")
				require.Equal(t, 9, strings.Count(query, "?"))
				require.Len(t, args, 9)
				require.Equal(t, "a", args[0])
				require.Equal(t, 0, args[1])
				require.Equal(t, "enc:x", args[6])
			},
		},
		{
			name: "positions follow slice order",
			items: []models.Model{
				{ID: "first"}, {ID: "second"}, {ID: "third"},
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Equal(t, 27, strings.Count(query, "?"))
				require.Len(t, args, 27)
				require.Equal(t, "first", args[0])
				require.Equal(t, 0, args[1])
				require.Equal(t, "second", args[9])
				require.Equal(t, 1, args[10])
				require.Equal(t, "third", args[18])
				require.Equal(t, 2, args[19])
			},
		},
		{
			name:  "positions continue from an earlier batch",
			items: []models.Model{{ID: "x"}, {ID: "y"}},
			first: maxModelsPerInsert,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 18)
				require.Equal(t, maxModelsPerInsert, args[1])
				require.Equal(t, maxModelsPerInsert+1, args[10])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertModelsQuery(tt.items, tt.first)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildInsertModelsQuery_Empty(t *testing.T) {
	_, _, err := buildInsertModelsQuery(nil, 0)
	require.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestMaxModelsPerInsert(t *testing.T) {
	require.LessOrEqual(t, maxModelsPerInsert*len(modelColumns), 999)
}
