// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secretstore provides the secret store that holds the master key.
//
// Two real backends exist. [NativeStore] delegates to the operating
// system credential manager through github.com/zalando/go-keyring.
// [DerivedStore] is used where no credential manager is reachable: secrets
// are sealed with AES-256-GCM under a key derived (PBKDF2) from a fixed,
// versioned derivation input and a random seed kept in the local
// preferences, and the sealed rows live in an SQLite database.
//
// [MemoryStore] keeps secrets in process memory. [Select] picks a backend
// once at startup.
package secretstore
