// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, found, err := s.GetPassword(ctx, "svc", "usr")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetPassword(ctx, "svc", "usr", "one"))
	require.NoError(t, s.SetPassword(ctx, "svc", "usr", "two"))
	require.NoError(t, s.SetPassword(ctx, "other", "usr", "three"))

	got, found, err := s.GetPassword(ctx, "svc", "usr")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "two", got)

	require.NoError(t, s.DeletePassword(ctx, "svc", "usr"))
	_, found, _ = s.GetPassword(ctx, "svc", "usr")
	assert.False(t, found)

	got, _, _ = s.GetPassword(ctx, "other", "usr")
	assert.Equal(t, "three", got)
	assert.Equal(t, KindMemory, s.Kind())
	assert.True(t, s.IsSupported(ctx))
}
