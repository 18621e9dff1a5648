// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-key-keeper services and the command-line interface.
//
// All Msg* constants are human-readable message strings shown to the user or
// written into log entries. Keeping them in one place ensures consistent
// wording; [UserMessage] picks the right one for an error.
package app

const (
	// MsgMasterKeyMissing is returned when sensitive data must be saved but
	// no master key exists yet.
	MsgMasterKeyMissing = "master key missing, cannot save sensitive data"

	// MsgMasterKeyNotFound is returned when the master key is requested for
	// export but none exists.
	MsgMasterKeyNotFound = "master key does not exist, cannot export"

	// MsgMasterKeyMissingOnLoad is logged when stored records are loaded
	// without a master key; their encrypted fields come back empty.
	MsgMasterKeyMissingOnLoad = "master key missing, cannot decrypt sensitive data, returning records with empty sensitive fields"

	// MsgInvalidMasterKey is returned when a stored or supplied master key
	// is not 64 hexadecimal characters.
	MsgInvalidMasterKey = "master key has an invalid format"

	// MsgNativeReadFailed is returned when the OS credential manager cannot
	// be read.
	MsgNativeReadFailed = "cannot access OS secure storage, check keychain permissions or restart the application"

	// MsgNativeWriteFailed is returned when the OS credential manager cannot
	// be written.
	MsgNativeWriteFailed = "cannot store the key in OS secure storage, check that the system keyring service is running"

	// MsgDerivedReadFailed is returned when the derived store cannot be read
	// or its sealed value cannot be opened.
	MsgDerivedReadFailed = "cannot access browser secure storage or key decryption failed: local storage may be unavailable or the key corrupted, consider clearing local data or using the desktop version"

	// MsgDerivedWriteFailed is returned when the derived store cannot seal
	// or persist a value.
	MsgDerivedWriteFailed = "cannot store the key in browser secure storage or key encryption failed, consider using the desktop version"

	// MsgMemoryStoreFailed is returned when the in-memory store fails.
	MsgMemoryStoreFailed = "in-memory secret storage failed"

	// MsgStoreUnavailable is returned when no usable secret store exists on
	// this host.
	MsgStoreUnavailable = "secure storage unavailable on this host"

	// MsgNewMasterKeyNative is logged after a master key was created in the
	// OS credential manager.
	MsgNewMasterKeyNative = "a new master key has been generated and stored in OS secure storage; old encrypted data cannot be decrypted, reconfigure API keys"

	// MsgNewMasterKeyDerived is logged after a master key was created in the
	// derived store.
	MsgNewMasterKeyDerived = "a new master key has been generated and stored in browser secure storage (SQLite + encryption); old encrypted data cannot be decrypted, reconfigure API keys"

	// MsgSecurityAdvisory is the dismissible notice of the derived store.
	MsgSecurityAdvisory = "This installation keeps secrets in browser secure storage, which has a lower security level than the OS credential manager. " +
		"We strongly recommend handling sensitive data (such as API keys) on a host with a system keychain."

	// MsgDecryptionFailed is shown for any authentication failure of an
	// encrypted field.
	MsgDecryptionFailed = "failed to decrypt sensitive data, the master key may have changed or the data is corrupted"

	// MsgCorruptedField is shown when a stored value is not a well-formed
	// encrypted field.
	MsgCorruptedField = "stored sensitive data is malformed"

	// MsgInvalidModel prefixes model validation failures.
	MsgInvalidModel = "invalid model configuration"

	// MsgUnexpectedError is shown for anything else.
	MsgUnexpectedError = "unexpected error"
)
