// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// DefaultKDFIterations is the PBKDF2-HMAC-SHA256 work factor for the
// derived secret store key.
const DefaultKDFIterations = 100_000

// SeedLength is the size of the random seed persisted next to the derived
// secret store (256 bits).
const SeedLength = 32

// ErrSealedTooShort is returned by [OpenSealed] when the ciphertext cannot
// contain a GCM tag.
var ErrSealedTooShort = errors.New("sealed value too short")

// GenerateSeed returns [SeedLength] random bytes.
func GenerateSeed() ([]byte, error) {
	seed := make([]byte, SeedLength)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return seed, nil
}

// DeriveStoreKey derives the AES-256 key of the derived secret store:
//
//	PBKDF2-HMAC-SHA256(password = input ‖ seed, salt = seed, iterations, 32)
//
// input is the fixed, versioned derivation input; seed is the persisted
// random seed. iterations <= 0 selects [DefaultKDFIterations].
func DeriveStoreKey(input, seed []byte, iterations int) []byte {
	if iterations <= 0 {
		iterations = DefaultKDFIterations
	}
	password := make([]byte, 0, len(input)+len(seed))
	password = append(password, input...)
	password = append(password, seed...)

	return pbkdf2.Key(password, seed, iterations, KeyLength, sha256.New)
}

// Fingerprint returns SHA-256(input). It identifies a derivation input
// without storing it.
func Fingerprint(input []byte) []byte {
	sum := sha256.Sum256(input)
	return sum[:]
}

// Seal encrypts plaintext with a raw 32-byte key and a fresh nonce. Unlike
// the field cipher it returns ciphertext and nonce separately.
func Seal(key, plaintext []byte) (ciphertext, nonce []byte, err error) {
	if len(key) != KeyLength {
		return nil, nil, fmt.Errorf("%w: raw key must be %d bytes", ErrInvalidKeyFormat, KeyLength)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, NonceLength)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// OpenSealed reverses [Seal]. Any authentication failure is reported as
// [ErrAuthenticationFailure].
func OpenSealed(key, ciphertext, nonce []byte) ([]byte, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: raw key must be %d bytes", ErrInvalidKeyFormat, KeyLength)
	}
	if len(nonce) != NonceLength {
		return nil, fmt.Errorf("%w: nonce must be %d bytes", ErrCiphertextFormat, NonceLength)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.Overhead() {
		return nil, ErrSealedTooShort
	}

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, opaque(ErrAuthenticationFailure, err)
	}
	return plain, nil
}

// AEADAvailable reports whether AES-256-GCM can be constructed in this
// runtime.
func AEADAvailable() bool {
	_, err := newGCM(make([]byte, KeyLength))
	return err == nil
}
