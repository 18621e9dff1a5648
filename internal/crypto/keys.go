// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

const (
	// KeyLength is the raw master key length in bytes (AES-256).
	KeyLength = 32

	// NonceLength is the GCM nonce length in bytes (96 bits).
	NonceLength = 12
)

// GenerateMasterKey draws [KeyLength] bytes from the OS CSPRNG and returns
// them as 64 lowercase hex characters.
func GenerateMasterKey() (string, error) {
	raw := make([]byte, KeyLength)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("read random key: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// ValidateKey checks that key is a hex-encoded 256-bit key.
func ValidateKey(key string) error {
	_, err := decodeKey(key)
	return err
}

// decodeKey is the single gate every key passes before reaching a cipher.
// Upper-case hex is accepted on input.
func decodeKey(key string) ([]byte, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKeyFormat)
	}
	if len(key)%2 != 0 {
		return nil, fmt.Errorf("%w: odd key length %d", ErrInvalidKeyFormat, len(key))
	}
	if len(key) != hex.EncodedLen(KeyLength) {
		return nil, fmt.Errorf("%w: key must be %d hex characters, got %d", ErrInvalidKeyFormat, hex.EncodedLen(KeyLength), len(key))
	}

	raw, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: key contains non-hex characters", ErrInvalidKeyFormat)
	}
	return raw, nil
}
