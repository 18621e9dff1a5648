// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the field cipher. Callers match them with
// [errors.Is]; the concrete error may carry a cause for diagnostics, but its
// message is always the fixed text below.
var (
	// ErrInvalidKeyFormat is returned when a master key is empty, has an odd
	// length, contains non-hex characters or does not decode to 32 bytes.
	// It is raised before any cipher is constructed.
	ErrInvalidKeyFormat = errors.New("invalid master key format")

	// ErrCiphertextFormat is the class of malformed encrypted field values.
	ErrCiphertextFormat = errors.New("invalid encrypted data format")

	// ErrMissingPrefix is returned when the value does not start with "enc:".
	ErrMissingPrefix = fmt.Errorf("%w: missing prefix", ErrCiphertextFormat)

	// ErrPayloadTooShort is returned when the decoded payload cannot even
	// hold a nonce.
	ErrPayloadTooShort = fmt.Errorf("%w: length too short", ErrCiphertextFormat)

	// ErrAuthenticationFailure covers a wrong key, tampered bytes and
	// undecodable base64 alike. The cause is never reflected in the message.
	ErrAuthenticationFailure = errors.New("failed to decrypt sensitive data, the master key may have changed or the data is corrupted")

	// ErrEncryptionFailed is returned when sealing fails after the key was
	// accepted (e.g. the system random source is unavailable).
	ErrEncryptionFailed = errors.New("failed to encrypt sensitive data")
)

// opaqueError reports a fixed message while keeping the original error
// reachable through errors.Unwrap for logging.
type opaqueError struct {
	kind  error
	cause error
}

func (e *opaqueError) Error() string { return e.kind.Error() }

func (e *opaqueError) Is(target error) bool { return target == e.kind }

func (e *opaqueError) Unwrap() error { return e.cause }

func opaque(kind, cause error) error {
	return &opaqueError{kind: kind, cause: cause}
}
