// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates a missing service name or master key
	// user.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSecretsConfigs indicates an unknown backend, too few KDF
	// iterations or a negative probe timeout.
	ErrInvalidSecretsConfigs = errors.New("invalid secrets configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN or state path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
