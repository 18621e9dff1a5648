// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

// Backends carries everything [Select] may need to build a backend.
type Backends struct {
	// Keyring overrides the OS credential manager (tests); nil uses it.
	Keyring Keyring
	// Open opens the derived store database.
	Open  RepositoryOpener
	Prefs store.LocalPreferences
}

// Select builds the secret store named by cfg.Backend. "auto" probes the OS
// credential manager (bounded by cfg.ProbeTimeout) and falls back to the
// derived store when it does not answer. The chosen backend must report
// IsSupported, otherwise [ErrStoreUnavailable] is returned.
func Select(ctx context.Context, cfg config.Secrets, service string, b Backends, log *logger.Logger) (SecretStore, error) {
	if log == nil {
		log = logger.Nop()
	}

	derived := func() SecretStore {
		return NewDerivedStore(b.Open, b.Prefs, DerivedOptions{
			DeviceLabel: cfg.DeviceLabel,
			Iterations:  cfg.KDFIterations,
		}, log)
	}

	var chosen SecretStore
	switch cfg.Backend {
	case config.BackendNative:
		chosen = NewNativeStore(b.Keyring, log)
	case config.BackendDerived:
		chosen = derived()
	case config.BackendMemory:
		chosen = NewMemoryStore()
	case config.BackendAuto, "":
		native := NewNativeStore(b.Keyring, log)

		probeCtx := ctx
		if cfg.ProbeTimeout > 0 {
			var cancel context.CancelFunc
			probeCtx, cancel = context.WithTimeout(ctx, cfg.ProbeTimeout)
			defer cancel()
		}

		start := time.Now()
		if err := native.probe(probeCtx, service); err != nil {
			log.Warn().Err(err).
				Str("func", "secretstore.Select").
				Dur("elapsed", time.Since(start)).
				Msg("OS credential manager unavailable, falling back to derived store")
			chosen = derived()
		} else {
			chosen = native
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	if !chosen.IsSupported(ctx) {
		log.Error().Str("func", "secretstore.Select").Str("backend", string(chosen.Kind())).Msg("secret store is not supported on this host")
		return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, chosen.Kind().HostLabel())
	}

	log.Info().Str("func", "secretstore.Select").Str("backend", string(chosen.Kind())).Msg("secret store selected")
	return chosen, nil
}
