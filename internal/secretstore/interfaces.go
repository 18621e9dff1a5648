// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_store_mock.go -package=mock

// Kind identifies a secret store backend.
type Kind string

const (
	KindNative  Kind = "native"
	KindDerived Kind = "derived"
	KindMemory  Kind = "memory"
)

// HostLabel names the storage the way it is shown to users.
func (k Kind) HostLabel() string {
	switch k {
	case KindNative:
		return "OS secure storage"
	case KindDerived:
		return "browser secure storage"
	default:
		return "in-memory storage"
	}
}

// SecretStore keeps small secrets addressed by (service, user).
type SecretStore interface {
	// SetPassword creates or replaces the secret.
	SetPassword(ctx context.Context, service, user, secret string) error
	// GetPassword reports found=false with a nil error when the secret
	// does not exist.
	GetPassword(ctx context.Context, service, user string) (secret string, found bool, err error)
	// DeletePassword removes the secret. Deleting a missing secret is not
	// an error.
	DeletePassword(ctx context.Context, service, user string) error
	IsSupported(ctx context.Context) bool
	Kind() Kind
}

// Keyring is the subset of github.com/zalando/go-keyring used by
// [NativeStore].
type Keyring interface {
	Get(service, user string) (string, error)
	Set(service, user, password string) error
	Delete(service, user string) error
}
