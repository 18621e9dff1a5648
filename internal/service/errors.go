// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
)

var (
	// ErrMasterKeyMissing is returned when sensitive data must be encrypted
	// but no master key exists.
	ErrMasterKeyMissing = app.NewUserError(app.MsgMasterKeyMissing)

	// ErrMasterKeyNotFound is returned by Export when no master key exists.
	ErrMasterKeyNotFound = app.NewUserError(app.MsgMasterKeyNotFound)

	// ErrStoreUnavailable is returned when the secret store fails while
	// reading or writing the master key.
	ErrStoreUnavailable = secretstore.ErrStoreUnavailable
)

// hostError carries a host-specific user message for a failure of kind.
// Error() is the fixed message; the cause stays reachable through Unwrap.
type hostError struct {
	msg   string
	kind  error
	cause error
}

func newHostError(msg string, kind, cause error) error {
	return &hostError{msg: msg, kind: kind, cause: cause}
}

func (e *hostError) Error() string { return e.msg }

func (e *hostError) UserMessage() string { return e.msg }

func (e *hostError) Is(target error) bool { return errors.Is(e.kind, target) }

func (e *hostError) Unwrap() error { return e.cause }
