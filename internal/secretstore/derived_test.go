// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

func TestDerivedStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewDerivedStore(openerFor(newSharedRepo(t)), newPrefs(t), testOpts, logger.Nop())

	_, found, err := s.GetPassword(ctx, "svc", "usr")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetPassword(ctx, "svc", "usr", "first"))
	require.NoError(t, s.SetPassword(ctx, "svc", "usr", "second"))

	got, found, err := s.GetPassword(ctx, "svc", "usr")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", got)

	require.NoError(t, s.DeletePassword(ctx, "svc", "usr"))
	_, found, err = s.GetPassword(ctx, "svc", "usr")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.DeletePassword(ctx, "svc", "usr"))
	assert.Equal(t, KindDerived, s.Kind())
	assert.False(t, s.DerivationChanged())
}

func TestDerivedStore_StoresNoPlaintext(t *testing.T) {
	ctx := context.Background()
	repo := newSharedRepo(t)
	s := NewDerivedStore(openerFor(repo), newPrefs(t), testOpts, logger.Nop())

	require.NoError(t, s.SetPassword(ctx, "svc", "usr", "plain-secret-value"))

	rec, err := repo.GetSecret(ctx, "svc", "usr")
	require.NoError(t, err)
	assert.NotContains(t, rec.Ciphertext, "plain-secret-value")
	assert.NotEmpty(t, rec.Nonce)
}

func TestDerivedStore_SameSeedReopens(t *testing.T) {
	ctx := context.Background()
	repo := newSharedRepo(t)
	prefs := newPrefs(t)

	require.NoError(t, NewDerivedStore(openerFor(repo), prefs, testOpts, logger.Nop()).SetPassword(ctx, "svc", "usr", "kept"))

	got, found, err := NewDerivedStore(openerFor(repo), prefs, testOpts, logger.Nop()).GetPassword(ctx, "svc", "usr")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "kept", got)
}

func TestDerivedStore_WrongSeedFailsOpaque(t *testing.T) {
	ctx := context.Background()
	repo := newSharedRepo(t)

	writer := NewDerivedStore(openerFor(repo), newPrefs(t), testOpts, logger.Nop())
	require.NoError(t, writer.SetPassword(ctx, "svc", "usr", "secret"))

	reader := NewDerivedStore(openerFor(repo), newPrefs(t), testOpts, logger.Nop())
	got, found, err := reader.GetPassword(ctx, "svc", "usr")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPasswordRead)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailure)
	assert.Equal(t, "password read/decryption failed", err.Error())
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestDerivedStore_DerivationChanged(t *testing.T) {
	ctx := context.Background()
	repo := newSharedRepo(t)
	prefs := newPrefs(t)

	first := NewDerivedStore(openerFor(repo), prefs, testOpts, logger.Nop())
	require.NoError(t, first.SetPassword(ctx, "svc", "usr", "secret"))

	labelled := testOpts
	labelled.DeviceLabel = "laptop"
	second := NewDerivedStore(openerFor(repo), prefs, labelled, logger.Nop())

	_, _, err := second.GetPassword(ctx, "svc", "usr")
	assert.ErrorIs(t, err, ErrPasswordRead)
	assert.True(t, second.DerivationChanged())

	// the new fingerprint is recorded, so a third start is quiet
	third := NewDerivedStore(openerFor(repo), prefs, labelled, logger.Nop())
	require.NoError(t, third.SetPassword(ctx, "svc", "usr", "again"))
	assert.False(t, third.DerivationChanged())
}

func TestDerivedStore_InitFailureIsRetried(t *testing.T) {
	ctx := context.Background()
	repo := newSharedRepo(t)

	calls := 0
	open := func(context.Context) (store.SecretRecordRepository, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("disk not mounted")
		}
		return repo, nil
	}
	s := NewDerivedStore(open, newPrefs(t), testOpts, logger.Nop())

	err := s.SetPassword(ctx, "svc", "usr", "x")
	assert.ErrorIs(t, err, ErrPasswordWrite)
	assert.Equal(t, "password encryption/storage failed", err.Error())

	require.NoError(t, s.SetPassword(ctx, "svc", "usr", "x"))
	require.NoError(t, s.SetPassword(ctx, "svc", "usr", "y"))
	assert.Equal(t, 2, calls)
}

func TestDerivedStore_IterationChangeDetected(t *testing.T) {
	ctx := context.Background()
	repo := newSharedRepo(t)
	prefs := newPrefs(t)

	require.NoError(t, NewDerivedStore(openerFor(repo), prefs, testOpts, logger.Nop()).SetPassword(ctx, "svc", "usr", "secret"))

	slower := testOpts
	slower.Iterations = 2 * testOpts.Iterations
	s := NewDerivedStore(openerFor(repo), prefs, slower, logger.Nop())

	_, found, err := s.GetPassword(ctx, "svc", "usr")
	assert.ErrorIs(t, err, ErrPasswordRead)
	assert.False(t, found)
	assert.True(t, s.DerivationChanged())
}

func TestDerivedOptions_Fingerprint(t *testing.T) {
	assert.Equal(t, DerivedOptions{}.fingerprint(), DerivedOptions{Iterations: crypto.DefaultKDFIterations}.fingerprint())
	assert.NotEqual(t, DerivedOptions{Iterations: 1000}.fingerprint(), DerivedOptions{Iterations: 1001}.fingerprint())
	assert.NotEqual(t, DerivedOptions{Iterations: 1000}.fingerprint(), DerivedOptions{Iterations: 1000, DeviceLabel: "x"}.fingerprint())
}

func TestDerivedStore_DerivationChangeSurvivesFailedOpen(t *testing.T) {
	ctx := context.Background()
	repo := newSharedRepo(t)
	prefs := newPrefs(t)

	require.NoError(t, NewDerivedStore(openerFor(repo), prefs, testOpts, logger.Nop()).SetPassword(ctx, "svc", "usr", "secret"))

	calls := 0
	open := func(context.Context) (store.SecretRecordRepository, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("disk not mounted")
		}
		return repo, nil
	}
	labelled := testOpts
	labelled.DeviceLabel = "laptop"
	s := NewDerivedStore(open, prefs, labelled, logger.Nop())

	_, _, err := s.GetPassword(ctx, "svc", "usr")
	assert.ErrorIs(t, err, ErrPasswordRead)
	assert.True(t, s.DerivationChanged())

	// the failed attempt must not record the new fingerprint
	_, fingerprint, err := prefs.DerivationSeed()
	require.NoError(t, err)
	assert.Equal(t, testOpts.fingerprint(), fingerprint)

	_, _, err = s.GetPassword(ctx, "svc", "usr")
	assert.ErrorIs(t, err, ErrPasswordRead)
	assert.True(t, s.DerivationChanged())

	_, fingerprint, err = prefs.DerivationSeed()
	require.NoError(t, err)
	assert.Equal(t, labelled.fingerprint(), fingerprint)
}

func TestDerivedStore_UnfingerprintedSeedIsAdopted(t *testing.T) {
	ctx := context.Background()
	prefs := newPrefs(t)
	seed, err := crypto.GenerateSeed()
	require.NoError(t, err)
	require.NoError(t, prefs.SaveDerivationSeed(seed, nil))

	s := NewDerivedStore(openerFor(newSharedRepo(t)), prefs, testOpts, logger.Nop())
	require.NoError(t, s.SetPassword(ctx, "svc", "usr", "x"))
	assert.False(t, s.DerivationChanged())

	_, fingerprint, err := prefs.DerivationSeed()
	require.NoError(t, err)
	assert.Equal(t, testOpts.fingerprint(), fingerprint)
}

func TestDerivedStore_Close(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "keyring.db")

	var opened []store.SecretRecordRepository
	sqlite := SQLiteOpener(dsn, logger.Nop())
	open := func(ctx context.Context) (store.SecretRecordRepository, error) {
		repo, err := sqlite(ctx)
		if err == nil {
			opened = append(opened, repo)
		}
		return repo, err
	}
	s := NewDerivedStore(open, newPrefs(t), testOpts, logger.Nop())

	// nothing opened yet
	require.NoError(t, s.Close())

	require.NoError(t, s.SetPassword(ctx, "svc", "usr", "kept"))
	require.Len(t, opened, 1)
	require.NoError(t, s.Close())
	assert.Error(t, opened[0].Ping(ctx))

	got, found, err := s.GetPassword(ctx, "svc", "usr")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "kept", got)
	require.Len(t, opened, 2)
	require.NoError(t, s.Close())
}

func TestDerivedStore_DeleteAndReadFailures(t *testing.T) {
	ctx := context.Background()
	open := func(context.Context) (store.SecretRecordRepository, error) {
		return nil, errors.New("unavailable")
	}
	s := NewDerivedStore(open, newPrefs(t), testOpts, logger.Nop())

	_, _, err := s.GetPassword(ctx, "svc", "usr")
	assert.ErrorIs(t, err, ErrPasswordRead)
	assert.ErrorIs(t, s.DeletePassword(ctx, "svc", "usr"), ErrPasswordDelete)
	assert.False(t, s.IsSupported(ctx))
}

func TestDerivedStore_IsSupported(t *testing.T) {
	s := NewDerivedStore(openerFor(newSharedRepo(t)), newPrefs(t), testOpts, logger.Nop())
	assert.True(t, s.IsSupported(context.Background()))
}

func TestDerivedStore_ConcurrentDistinctKeys(t *testing.T) {
	ctx := context.Background()
	s := NewDerivedStore(openerFor(newSharedRepo(t)), newPrefs(t), testOpts, logger.Nop())

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.SetPassword(ctx, "svc", fmt.Sprintf("user-%d", i), fmt.Sprintf("secret-%d", i))
		}()
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, errs[i])
		got, found, err := s.GetPassword(ctx, "svc", fmt.Sprintf("user-%d", i))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, fmt.Sprintf("secret-%d", i), got)
	}
}
