// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the global configuration flags from args. Parsing stops
// at the first positional argument; the positional arguments are returned.
//
// Flags:
//
//	-c/-config       json file path with configs
//	-backend         secret store backend (auto|native|derived|memory)
//	-service         secret store service name
//	-device-label    derived backend device label
//	-kdf-iterations  derived backend PBKDF2 iterations
//	-probe-timeout   OS keyring probe timeout (e.g. "3s")
//	-secrets-db      derived backend SQLite DSN
//	-models-db       model configuration SQLite DSN
//	-state           local state file path
//	-log             log file path
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var cfg StructuredConfig
	var probeTimeout time.Duration

	fs := flag.NewFlagSet("keykeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Secrets.Backend, "backend", "", "Secret store backend: auto, native, derived or memory")
	fs.StringVar(&cfg.App.ServiceName, "service", "", "Secret store service name")
	fs.StringVar(&cfg.Secrets.DeviceLabel, "device-label", "", "Device label mixed into the derived store key")
	fs.IntVar(&cfg.Secrets.KDFIterations, "kdf-iterations", 0, "PBKDF2 iterations of the derived store")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "OS keyring probe timeout (e.g. 3s)")
	fs.StringVar(&cfg.Storage.SecretsDSN, "secrets-db", "", "Derived secret store database")
	fs.StringVar(&cfg.Storage.ModelsDSN, "models-db", "", "Model configuration database")
	fs.StringVar(&cfg.Storage.StatePath, "state", "", "Local state file")
	fs.StringVar(&cfg.Log.Path, "log", "", "Log file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Secrets.ProbeTimeout = probeTimeout

	return &cfg, fs.Args(), nil
}
