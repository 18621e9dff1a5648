// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import "errors"

var (
	// ErrStoreUnavailable is returned when the selected backend cannot be
	// used on this host.
	ErrStoreUnavailable = errors.New("secure storage unavailable")

	// ErrPasswordWrite is returned by [DerivedStore.SetPassword].
	ErrPasswordWrite = errors.New("password encryption/storage failed")

	// ErrPasswordRead is returned by [DerivedStore.GetPassword].
	ErrPasswordRead = errors.New("password read/decryption failed")

	// ErrPasswordDelete is returned by [DerivedStore.DeletePassword].
	ErrPasswordDelete = errors.New("password deletion failed")

	// ErrUnknownBackend is returned by [Select] for an unsupported backend
	// name.
	ErrUnknownBackend = errors.New("unknown secret store backend")
)

// wrapError shows only the message of kind; the cause stays reachable
// through errors.Unwrap for logs.
type wrapError struct {
	kind  error
	cause error
}

func wrap(kind, cause error) error {
	return &wrapError{kind: kind, cause: cause}
}

func (e *wrapError) Error() string { return e.kind.Error() }

func (e *wrapError) Is(target error) bool { return target == e.kind }

func (e *wrapError) Unwrap() error { return e.cause }
