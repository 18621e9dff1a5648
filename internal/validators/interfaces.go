// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user supplied records before they are
// encrypted and persisted.
package validators

import "context"

// Validator validates obj. fields optionally limits the check to the named
// fields; unknown names fail with ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
