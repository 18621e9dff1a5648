// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-key-keeper/models"
)

// fieldCipher is the private implementation of [FieldCipher]. It holds no
// state: every call builds its own AEAD and draws its own nonce, so
// concurrent calls never share a nonce source.
type fieldCipher struct{}

// NewFieldCipher constructs the AES-256-GCM [FieldCipher].
func NewFieldCipher() FieldCipher {
	return &fieldCipher{}
}

// Encrypt implements [FieldCipher]. Output layout:
//
//	"enc:" + base64(ciphertext ‖ tag ‖ nonce)
//
// The nonce sits at the end so that the payload boundaries stay fixed.
func (f *fieldCipher) Encrypt(plaintext, key string) (string, error) {
	raw, err := decodeKey(key)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(raw)
	if err != nil {
		return "", opaque(ErrEncryptionFailed, err)
	}

	nonce := make([]byte, NonceLength)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", opaque(ErrEncryptionFailed, fmt.Errorf("generate nonce: %w", err))
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := make([]byte, 0, len(sealed)+len(nonce))
	blob = append(blob, sealed...)
	blob = append(blob, nonce...)

	return models.EncryptedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [FieldCipher]. Format problems that can be seen without
// the key are reported as [ErrCiphertextFormat]; everything that involves
// the key or the bytes themselves collapses into [ErrAuthenticationFailure].
func (f *fieldCipher) Decrypt(ciphertext, key string) (string, error) {
	if !models.HasEncryptedPrefix(ciphertext) {
		return "", ErrMissingPrefix
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext[len(models.EncryptedPrefix):])
	if err != nil {
		return "", opaque(ErrAuthenticationFailure, err)
	}
	if len(blob) < NonceLength {
		return "", ErrPayloadTooShort
	}

	raw, err := decodeKey(key)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(raw)
	if err != nil {
		return "", opaque(ErrAuthenticationFailure, err)
	}

	split := len(blob) - NonceLength
	sealed, nonce := blob[:split], blob[split:]

	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", opaque(ErrAuthenticationFailure, err)
	}

	return string(plain), nil
}

// IsEncrypted implements [FieldCipher].
func (f *fieldCipher) IsEncrypted(value string) bool {
	return IsEncrypted(value)
}

// IsEncrypted reports whether value carries the "enc:" tag. It never fails
// and looks at no more than the tag's length.
func IsEncrypted(value string) bool {
	return models.HasEncryptedPrefix(value)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
