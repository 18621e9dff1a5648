// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args and blocks until it is done.
	Run(ctx context.Context, args []string) error
}

// Prompt is an interactive step shown during startup.
type Prompt interface {
	Run(ctx context.Context) error
}

// derivationReporter is implemented by secret stores whose key derivation
// inputs can change between runs.
type derivationReporter interface {
	DerivationChanged() bool
}
