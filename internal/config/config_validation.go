// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// MinKDFIterations is the lowest accepted PBKDF2 work factor.
const MinKDFIterations = 10_000

var backends = []string{BackendAuto, BackendNative, BackendDerived, BackendMemory}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ServiceName == "" || cfg.App.MasterKeyUser == "" {
		return ErrInvalidAppConfigs
	}

	if !slices.Contains(backends, cfg.Secrets.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSecretsConfigs, cfg.Secrets.Backend)
	}
	if cfg.Secrets.KDFIterations < MinKDFIterations {
		return fmt.Errorf("%w: kdf iterations must be at least %d", ErrInvalidSecretsConfigs, MinKDFIterations)
	}
	if cfg.Secrets.ProbeTimeout < 0 {
		return fmt.Errorf("%w: negative probe timeout", ErrInvalidSecretsConfigs)
	}

	if cfg.Storage.SecretsDSN == "" || cfg.Storage.ModelsDSN == "" || cfg.Storage.StatePath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
