// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/migrations"
	"github.com/MKhiriev/go-key-keeper/models"
)

// DerivationInputV1 is the fixed derivation input of the derived store key.
// Bumping the version makes every previously sealed secret unreadable.
const DerivationInputV1 = "go-key-keeper/derived-store/v1"

// RepositoryOpener opens the database holding sealed secrets.
type RepositoryOpener func(ctx context.Context) (store.SecretRecordRepository, error)

// SQLiteOpener opens (and migrates) the SQLite database at dsn.
func SQLiteOpener(dsn string, log *logger.Logger) RepositoryOpener {
	return func(ctx context.Context) (store.SecretRecordRepository, error) {
		db, err := store.NewConnectSQLite(ctx, dsn, migrations.Secrets, log)
		if err != nil {
			return nil, err
		}
		return store.NewSecretRecordRepository(db, log), nil
	}
}

// DerivedOptions tunes the key derivation of [DerivedStore].
type DerivedOptions struct {
	// DeviceLabel is appended to [DerivationInputV1] when non-empty.
	DeviceLabel string
	// Iterations is the PBKDF2 work factor; <= 0 selects the default.
	Iterations int
}

func (o DerivedOptions) derivationInput() []byte {
	if o.DeviceLabel == "" {
		return []byte(DerivationInputV1)
	}
	return []byte(DerivationInputV1 + "/" + o.DeviceLabel)
}

func (o DerivedOptions) iterations() int {
	if o.Iterations <= 0 {
		return crypto.DefaultKDFIterations
	}
	return o.Iterations
}

// fingerprint identifies every parameter the store key depends on besides
// the seed, so a changed work factor is detected like a changed label.
func (o DerivedOptions) fingerprint() []byte {
	params := append(o.derivationInput(), "/pbkdf2-sha256/"+strconv.Itoa(o.iterations())...)
	return crypto.Fingerprint(params)
}

// DerivedStore is the [SecretStore] of hosts without an OS credential
// manager. It initializes lazily on first use: the seed is loaded from (or
// created in) the local preferences, the store key is derived and the
// database is opened. A failed initialization is retried by the next call.
type DerivedStore struct {
	open   RepositoryOpener
	prefs  store.LocalPreferences
	opts   DerivedOptions
	logger *logger.Logger
	now    func() time.Time

	mu                sync.Mutex
	ready             bool
	repo              store.SecretRecordRepository
	key               []byte
	derivationChanged bool
}

// NewDerivedStore creates a derived store. Nothing is read or opened until
// the first operation.
func NewDerivedStore(open RepositoryOpener, prefs store.LocalPreferences, opts DerivedOptions, log *logger.Logger) *DerivedStore {
	if log == nil {
		log = logger.Nop()
	}
	return &DerivedStore{
		open:   open,
		prefs:  prefs,
		opts:   opts,
		logger: log,
		now:    time.Now,
	}
}

func (s *DerivedStore) Kind() Kind { return KindDerived }

// DerivationChanged reports whether the seed on disk was created with a
// different derivation input or work factor than the current one. Secrets sealed before
// the change can no longer be opened.
func (s *DerivedStore) DerivationChanged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.derivationChanged
}

// seedState describes the stored fingerprint relative to the current one.
type seedState int

const (
	seedCurrent seedState = iota
	seedUnfingerprinted
	seedDerivationChanged
)

// init returns the repository and store key, initializing them once. The
// fingerprint is only rewritten after the database opened, so a failed
// attempt leaves the change detectable by the next one.
func (s *DerivedStore) init(ctx context.Context) (store.SecretRecordRepository, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return s.repo, s.key, nil
	}

	seed, state, err := s.loadOrCreateSeed()
	if err != nil {
		return nil, nil, err
	}
	if state == seedDerivationChanged {
		s.derivationChanged = true
	}

	repo, err := s.open(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("open secrets database: %w", err)
	}

	if state != seedCurrent {
		if err = s.prefs.UpdateDerivationFingerprint(s.opts.fingerprint()); err != nil {
			closeRepository(repo)
			return nil, nil, fmt.Errorf("save derivation fingerprint: %w", err)
		}
	}

	s.key = crypto.DeriveStoreKey(s.opts.derivationInput(), seed, s.opts.iterations())
	s.repo = repo
	s.ready = true

	return s.repo, s.key, nil
}

func (s *DerivedStore) loadOrCreateSeed() ([]byte, seedState, error) {
	fingerprint := s.opts.fingerprint()

	seed, stored, err := s.prefs.DerivationSeed()
	switch {
	case errors.Is(err, store.ErrSeedNotFound):
		seed, err = crypto.GenerateSeed()
		if err != nil {
			return nil, seedCurrent, err
		}
		if err = s.prefs.SaveDerivationSeed(seed, fingerprint); err != nil {
			return nil, seedCurrent, fmt.Errorf("save derivation seed: %w", err)
		}
		s.logger.Info().Str("func", "DerivedStore.init").Msg("created new derivation seed")
		return seed, seedCurrent, nil
	case err != nil:
		return nil, seedCurrent, fmt.Errorf("load derivation seed: %w", err)
	}

	if len(stored) == 0 {
		// seeds written before fingerprints were recorded
		return seed, seedUnfingerprinted, nil
	}

	if subtle.ConstantTimeCompare(stored, fingerprint) == 1 {
		return seed, seedCurrent, nil
	}

	s.logger.Warn().
		Str("func", "DerivedStore.init").
		Msg("derivation parameters changed since the seed was created; previously stored secrets cannot be decrypted")
	return seed, seedDerivationChanged, nil
}

// Close releases the secrets database if it was opened. The store
// initializes again on its next use.
func (s *DerivedStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return nil
	}
	err := closeRepository(s.repo)
	s.repo, s.key, s.ready = nil, nil, false
	return err
}

func closeRepository(repo store.SecretRecordRepository) error {
	if c, ok := repo.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *DerivedStore) SetPassword(ctx context.Context, service, user, secret string) error {
	repo, key, err := s.init(ctx)
	if err != nil {
		s.logFailure(err, "DerivedStore.SetPassword", service, user)
		return wrap(ErrPasswordWrite, err)
	}

	ciphertext, nonce, err := crypto.Seal(key, []byte(secret))
	if err != nil {
		s.logFailure(err, "DerivedStore.SetPassword", service, user)
		return wrap(ErrPasswordWrite, err)
	}

	rec := models.SecretRecord{
		Service:    service,
		User:       user,
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CreatedAt:  s.now().UTC(),
	}
	if err = repo.UpsertSecret(ctx, rec); err != nil {
		s.logFailure(err, "DerivedStore.SetPassword", service, user)
		return wrap(ErrPasswordWrite, err)
	}

	return nil
}

func (s *DerivedStore) GetPassword(ctx context.Context, service, user string) (string, bool, error) {
	repo, key, err := s.init(ctx)
	if err != nil {
		s.logFailure(err, "DerivedStore.GetPassword", service, user)
		return "", false, wrap(ErrPasswordRead, err)
	}

	rec, err := repo.GetSecret(ctx, service, user)
	if errors.Is(err, store.ErrSecretRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		s.logFailure(err, "DerivedStore.GetPassword", service, user)
		return "", false, wrap(ErrPasswordRead, err)
	}

	plain, err := openRecord(key, rec)
	if err != nil {
		s.logFailure(err, "DerivedStore.GetPassword", service, user)
		return "", false, wrap(ErrPasswordRead, err)
	}

	return plain, true, nil
}

func (s *DerivedStore) DeletePassword(ctx context.Context, service, user string) error {
	repo, _, err := s.init(ctx)
	if err != nil {
		s.logFailure(err, "DerivedStore.DeletePassword", service, user)
		return wrap(ErrPasswordDelete, err)
	}

	if _, err = repo.DeleteSecret(ctx, service, user); err != nil {
		s.logFailure(err, "DerivedStore.DeletePassword", service, user)
		return wrap(ErrPasswordDelete, err)
	}

	return nil
}

// IsSupported reports whether the database answers and AES-GCM works.
func (s *DerivedStore) IsSupported(ctx context.Context) bool {
	if !crypto.AEADAvailable() {
		return false
	}

	repo, _, err := s.init(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "DerivedStore.IsSupported").Msg("derived store initialization failed")
		return false
	}

	if err = repo.Ping(ctx); err != nil {
		s.logger.Err(err).Str("func", "DerivedStore.IsSupported").Msg("secrets database unreachable")
		return false
	}

	return true
}

func (s *DerivedStore) logFailure(err error, fn, service, user string) {
	s.logger.Err(err).Str("func", fn).Str("service", service).Str("user", user).Msg("derived store operation failed")
}

func openRecord(key []byte, rec models.SecretRecord) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(rec.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(rec.Nonce)
	if err != nil {
		return "", fmt.Errorf("decode nonce: %w", err)
	}

	plain, err := crypto.OpenSealed(key, ciphertext, nonce)
	if err != nil {
		return "", err
	}
	defer clear(plain)

	return string(plain), nil
}
