// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/migrations"
)

// fakeKeyring mimics go-keyring: missing entries yield keyring.ErrNotFound.
type fakeKeyring struct {
	mu      sync.Mutex
	entries map[string]string
	err     error
	block   chan struct{}
}

func newFakeKeyring() *fakeKeyring {
	return &fakeKeyring{entries: make(map[string]string)}
}

func (k *fakeKeyring) wait() {
	if k.block != nil {
		<-k.block
	}
}

func (k *fakeKeyring) Get(service, user string) (string, error) {
	k.wait()
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.err != nil {
		return "", k.err
	}
	v, ok := k.entries[service+"\x00"+user]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return v, nil
}

func (k *fakeKeyring) Set(service, user, password string) error {
	k.wait()
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.err != nil {
		return k.err
	}
	k.entries[service+"\x00"+user] = password
	return nil
}

func (k *fakeKeyring) Delete(service, user string) error {
	k.wait()
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.err != nil {
		return k.err
	}
	key := service + "\x00" + user
	if _, ok := k.entries[key]; !ok {
		return keyring.ErrNotFound
	}
	delete(k.entries, key)
	return nil
}

// newSharedRepo opens one migrated in-memory database; stores built with
// openerFor(repo) all see the same rows.
func newSharedRepo(t *testing.T) store.SecretRecordRepository {
	t.Helper()
	db, err := store.NewConnectSQLite(context.Background(), "file::memory:", migrations.Secrets, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return store.NewSecretRecordRepository(db, logger.Nop())
}

func openerFor(repo store.SecretRecordRepository) RepositoryOpener {
	return func(context.Context) (store.SecretRecordRepository, error) { return repo, nil }
}

func newPrefs(t *testing.T) store.LocalPreferences {
	t.Helper()
	prefs, err := store.NewLocalPreferences("")
	require.NoError(t, err)
	return prefs
}

// low work factor keeps tests fast
var testOpts = DerivedOptions{Iterations: 1000}
