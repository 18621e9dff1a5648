// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line application runtime.
//
// It runs the startup steps (master key bootstrap, security advisory) and
// dispatches the subcommands to the services.
package client
