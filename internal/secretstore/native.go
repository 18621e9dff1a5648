// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import (
	"context"
	"errors"

	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
)

// osKeyring calls the platform credential manager.
type osKeyring struct{}

func (osKeyring) Get(service, user string) (string, error) { return keyring.Get(service, user) }

func (osKeyring) Set(service, user, password string) error {
	return keyring.Set(service, user, password)
}

func (osKeyring) Delete(service, user string) error { return keyring.Delete(service, user) }

// NativeStore is the [SecretStore] of hosts with an OS credential manager.
// Errors of the credential manager are returned unchanged, except
// keyring.ErrNotFound, which means "absent".
type NativeStore struct {
	keyring Keyring
	logger  *logger.Logger
}

// NewNativeStore wraps kr; nil selects the OS credential manager.
func NewNativeStore(kr Keyring, log *logger.Logger) *NativeStore {
	if kr == nil {
		kr = osKeyring{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &NativeStore{keyring: kr, logger: log}
}

func (s *NativeStore) SetPassword(ctx context.Context, service, user, secret string) error {
	_, err := callBlocking(ctx, func() (struct{}, error) {
		return struct{}{}, s.keyring.Set(service, user, secret)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "NativeStore.SetPassword").Str("service", service).Str("user", user).Msg("keyring write failed")
	}
	return err
}

func (s *NativeStore) GetPassword(ctx context.Context, service, user string) (string, bool, error) {
	secret, err := callBlocking(ctx, func() (string, error) {
		return s.keyring.Get(service, user)
	})
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "NativeStore.GetPassword").Str("service", service).Str("user", user).Msg("keyring read failed")
		return "", false, err
	}
	return secret, true, nil
}

func (s *NativeStore) DeletePassword(ctx context.Context, service, user string) error {
	_, err := callBlocking(ctx, func() (struct{}, error) {
		return struct{}{}, s.keyring.Delete(service, user)
	})
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "NativeStore.DeletePassword").Str("service", service).Str("user", user).Msg("keyring delete failed")
	}
	return err
}

// IsSupported is always true: failures surface from the operations.
func (s *NativeStore) IsSupported(context.Context) bool { return true }

func (s *NativeStore) Kind() Kind { return KindNative }

// probe reads a sentinel entry. Success and "not found" both prove the
// credential manager answers.
func (s *NativeStore) probe(ctx context.Context, service string) error {
	_, err := callBlocking(ctx, func() (string, error) {
		return s.keyring.Get(service, probeUser)
	})
	if err == nil || errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

const probeUser = "capability-probe"
