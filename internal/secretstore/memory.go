// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secretstore

import (
	"context"
	"sync"
)

type memoryKey struct {
	service string
	user    string
}

// MemoryStore is an in-process [SecretStore]. Secrets are lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	secrets map[memoryKey]string
}

// NewMemoryStore creates an empty in-memory secret store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: make(map[memoryKey]string)}
}

func (s *MemoryStore) SetPassword(_ context.Context, service, user, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secrets[memoryKey{service, user}] = secret
	return nil
}

func (s *MemoryStore) GetPassword(_ context.Context, service, user string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	secret, ok := s.secrets[memoryKey{service, user}]
	return secret, ok, nil
}

func (s *MemoryStore) DeletePassword(_ context.Context, service, user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.secrets, memoryKey{service, user})
	return nil
}

func (s *MemoryStore) IsSupported(context.Context) bool { return true }

func (s *MemoryStore) Kind() Kind { return KindMemory }
