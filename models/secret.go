// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"crypto/subtle"
	"time"
)

// EncryptedPrefix tags a string as an encrypted field value:
// "enc:" + base64(ciphertext ‖ tag ‖ nonce).
const EncryptedPrefix = "enc:"

// SecretRecord is one row of the derived secret store. Ciphertext and Nonce
// are base64 (standard encoding); the pair (Service, User) is the identity.
type SecretRecord struct {
	Service    string
	User       string
	Ciphertext string
	Nonce      string
	CreatedAt  time.Time
}

// FieldKind discriminates the two states of a sensitive field.
type FieldKind int

const (
	// FieldPlain is a value that has not been encrypted yet.
	FieldPlain FieldKind = iota
	// FieldEncrypted is a serialized encrypted field.
	FieldEncrypted
)

// SensitiveField is a tagged value: either plaintext or an encrypted field.
// The "enc:" prefix exists only in the serialized form.
type SensitiveField struct {
	kind  FieldKind
	value string
}

// Plain wraps plaintext.
func Plain(value string) SensitiveField {
	return SensitiveField{kind: FieldPlain, value: value}
}

// Encrypted wraps a serialized encrypted field (including its prefix).
func Encrypted(value string) SensitiveField {
	return SensitiveField{kind: FieldEncrypted, value: value}
}

// ParseSensitiveField classifies a persisted string.
func ParseSensitiveField(raw string) SensitiveField {
	if HasEncryptedPrefix(raw) {
		return Encrypted(raw)
	}
	return Plain(raw)
}

// Kind reports which variant f holds.
func (f SensitiveField) Kind() FieldKind { return f.kind }

// IsEncrypted reports whether f holds an encrypted field.
func (f SensitiveField) IsEncrypted() bool { return f.kind == FieldEncrypted }

// IsEmpty reports whether f carries no value at all.
func (f SensitiveField) IsEmpty() bool { return f.value == "" }

// String returns the serialized form.
func (f SensitiveField) String() string { return f.value }

// HasEncryptedPrefix is a purely syntactic check for [EncryptedPrefix]. It
// inspects at most len(EncryptedPrefix) bytes and compares them in constant
// time, so it never depends on the rest of the input.
func HasEncryptedPrefix(value string) bool {
	if len(value) < len(EncryptedPrefix) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(value[:len(EncryptedPrefix)]), []byte(EncryptedPrefix)) == 1
}
