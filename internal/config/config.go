// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Secret store backends accepted by [Secrets.Backend].
const (
	BackendAuto    = "auto"
	BackendNative  = "native"
	BackendDerived = "derived"
	BackendMemory  = "memory"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "KEYKEEPER_"

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identifiers of the application in the secret store.
	App App `envPrefix:"APP_"`

	// Secrets selects and tunes the secret store backend.
	Secrets Secrets `envPrefix:"SECRETS_"`

	// Storage holds file locations of the local databases and state.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: KEYKEEPER_CONFIG, flag: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the secret-store namespace of the application.
type App struct {
	// ServiceName is the service attribute under which all secrets of the
	// application are stored.
	// Env: KEYKEEPER_APP_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// MasterKeyUser is the user/account attribute of the master key entry.
	// Env: KEYKEEPER_APP_MASTER_KEY_USER
	MasterKeyUser string `env:"MASTER_KEY_USER"`
}

// Secrets configures the secret store.
type Secrets struct {
	// Backend is one of "auto", "native", "derived" or "memory".
	// Env: KEYKEEPER_SECRETS_BACKEND
	Backend string `env:"BACKEND"`

	// DeviceLabel is appended to the fixed derivation input of the derived
	// backend. Changing it makes previously stored secrets unreadable.
	// Env: KEYKEEPER_SECRETS_DEVICE_LABEL
	DeviceLabel string `env:"DEVICE_LABEL"`

	// KDFIterations is the PBKDF2 work factor of the derived backend.
	// Env: KEYKEEPER_SECRETS_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// ProbeTimeout bounds the OS keyring capability probe in "auto" mode.
	// Env: KEYKEEPER_SECRETS_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Storage holds on-disk locations.
type Storage struct {
	// SecretsDSN is the SQLite DSN of the derived secret store database.
	// Env: KEYKEEPER_STORAGE_SECRETS_DSN
	SecretsDSN string `env:"SECRETS_DSN"`

	// ModelsDSN is the SQLite DSN of the model configuration database.
	// Env: KEYKEEPER_STORAGE_MODELS_DSN
	ModelsDSN string `env:"MODELS_DSN"`

	// StatePath is the JSON file holding non-secret local state (seed,
	// dismissed advisories).
	// Env: KEYKEEPER_STORAGE_STATE_PATH
	StatePath string `env:"STATE_PATH"`
}

// Log holds logger settings.
type Log struct {
	// Path is the log file. Empty means next to the executable.
	// Env: KEYKEEPER_LOG_PATH
	Path string `env:"PATH"`
}

// Load loads, merges, and validates the configuration from all sources
// (last source wins for non-zero fields):
//  0. defaults (see [Defaults])
//  1. environment variables
//  2. command-line flags parsed from args
//  3. JSON file (path resolved from sources 1 and 2)
//
// It returns the positional arguments left after flag parsing.
func Load(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	return cfg, b.rest, err
}

// Defaults returns the built-in configuration. Files live in the user config
// directory (e.g. ~/.config/go-key-keeper).
func Defaults() *StructuredConfig {
	dir := defaultDataDir()

	return &StructuredConfig{
		App: App{
			ServiceName:   "com.multichat.app",
			MasterKeyUser: "master-key",
		},
		Secrets: Secrets{
			Backend:       BackendAuto,
			KDFIterations: 100_000,
			ProbeTimeout:  3 * time.Second,
		},
		Storage: Storage{
			SecretsDSN: filepath.Join(dir, "keyring.db"),
			ModelsDSN:  filepath.Join(dir, "models.db"),
			StatePath:  filepath.Join(dir, "state.json"),
		},
		Log: Log{
			Path: filepath.Join(dir, "keykeeper.log"),
		},
	}
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "go-key-keeper")
}
