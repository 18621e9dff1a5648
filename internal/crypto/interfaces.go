// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements field-level authenticated encryption of
// sensitive strings and the key material helpers around it.
//
// A sensitive value is stored as a self-describing string:
//
//	enc:<base64(ciphertext ‖ tag ‖ nonce)>
//
// where the cipher is AES-256-GCM, the nonce is 12 random bytes drawn per
// call and the key is the installation master key given as 64 hex
// characters.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_cipher_mock.go -package=mock

// FieldCipher encrypts and decrypts single string fields with the master key.
type FieldCipher interface {
	// Encrypt seals plaintext (which may be empty) under key and returns an
	// "enc:"-tagged value. Fails with ErrInvalidKeyFormat before touching any
	// cipher when the key is malformed.
	Encrypt(plaintext, key string) (string, error)

	// Decrypt opens a value produced by Encrypt. Fails with ErrMissingPrefix
	// or ErrPayloadTooShort on malformed input and with
	// ErrAuthenticationFailure when the key is wrong or the bytes were altered.
	Decrypt(ciphertext, key string) (string, error)

	// IsEncrypted is a syntactic "enc:" prefix check; it never fails.
	IsEncrypted(value string) bool
}
