// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
)

// masterKeyManager keeps the master key under (service, user) in the secret
// store. The key is never logged.
type masterKeyManager struct {
	secrets  secretstore.SecretStore
	service  string
	user     string
	advisory SecurityAdvisory
	logger   *logger.Logger

	// serializes Initialize so concurrent callers create one key
	initMu sync.Mutex
}

// NewMasterKeyManager creates a manager for the entry (service, user).
// advisory may be nil.
func NewMasterKeyManager(secrets secretstore.SecretStore, service, user string, advisory SecurityAdvisory, log *logger.Logger) MasterKeyManager {
	if log == nil {
		log = logger.Nop()
	}
	return &masterKeyManager{
		secrets:  secrets,
		service:  service,
		user:     user,
		advisory: advisory,
		logger:   log,
	}
}

func (m *masterKeyManager) Backend() secretstore.Kind { return m.secrets.Kind() }

func (m *masterKeyManager) Generate() (string, error) {
	return crypto.GenerateMasterKey()
}

func (m *masterKeyManager) Exists(ctx context.Context) bool {
	key, found, err := m.secrets.GetPassword(ctx, m.service, m.user)
	if err != nil {
		m.logger.Err(err).Str("func", "masterKeyManager.Exists").Msg("error checking whether the master key exists")
		return false
	}
	return found && key != ""
}

func (m *masterKeyManager) Get(ctx context.Context) (string, error) {
	key, found, err := m.secrets.GetPassword(ctx, m.service, m.user)
	if err != nil {
		m.logger.Err(err).Str("func", "masterKeyManager.Get").Str("backend", string(m.Backend())).Msg("error reading the master key")
		return "", newHostError(m.readFailedMessage(), ErrStoreUnavailable, err)
	}
	if !found || key == "" {
		return "", nil
	}

	if err = crypto.ValidateKey(key); err != nil {
		m.logger.Error().Str("func", "masterKeyManager.Get").Msg("stored master key has an invalid format")
		return "", err
	}

	return key, nil
}

func (m *masterKeyManager) Store(ctx context.Context, key string) error {
	if err := crypto.ValidateKey(key); err != nil {
		return err
	}

	if err := m.secrets.SetPassword(ctx, m.service, m.user, strings.ToLower(key)); err != nil {
		m.logger.Err(err).Str("func", "masterKeyManager.Store").Str("backend", string(m.Backend())).Msg("error storing the master key")
		return newHostError(m.writeFailedMessage(), ErrStoreUnavailable, err)
	}

	return nil
}

func (m *masterKeyManager) Initialize(ctx context.Context) (string, error) {
	m.initMu.Lock()
	defer m.initMu.Unlock()

	key, err := m.Get(ctx)
	if err != nil {
		return "", err
	}
	if key != "" {
		return key, nil
	}

	m.logger.Warn().Str("func", "masterKeyManager.Initialize").Msg("master key does not exist, generating new key")

	key, err = m.Generate()
	if err != nil {
		return "", fmt.Errorf("generate master key: %w", err)
	}
	if err = m.Store(ctx, key); err != nil {
		return "", err
	}

	if m.Backend() == secretstore.KindDerived {
		m.logger.Warn().Str("func", "masterKeyManager.Initialize").Msg(app.MsgNewMasterKeyDerived)
		if m.advisory != nil {
			m.advisory.Raise(ctx)
		}
	} else {
		m.logger.Warn().Str("func", "masterKeyManager.Initialize").Msg(app.MsgNewMasterKeyNative)
	}

	return key, nil
}

func (m *masterKeyManager) Export(ctx context.Context) (string, error) {
	key, err := m.Get(ctx)
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", ErrMasterKeyNotFound
	}
	return key, nil
}

func (m *masterKeyManager) readFailedMessage() string {
	switch m.Backend() {
	case secretstore.KindDerived:
		return app.MsgDerivedReadFailed
	case secretstore.KindNative:
		return app.MsgNativeReadFailed
	default:
		return app.MsgMemoryStoreFailed
	}
}

func (m *masterKeyManager) writeFailedMessage() string {
	switch m.Backend() {
	case secretstore.KindDerived:
		return app.MsgDerivedWriteFailed
	case secretstore.KindNative:
		return app.MsgNativeWriteFailed
	default:
		return app.MsgMemoryStoreFailed
	}
}
