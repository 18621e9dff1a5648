// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// localPreferences keeps non-secret state in a JSON file. The seed stored
// here is not a secret by itself: without the derivation input it only
// salts the derived store key.
type localPreferences struct {
	path     string
	inMemory bool

	mu    sync.RWMutex
	state localPersistedPreferences
}

type localPersistedPreferences struct {
	Seed                     string `json:"seed,omitempty"`
	DerivationFingerprint    string `json:"derivation_fingerprint,omitempty"`
	SecurityWarningDismissed bool   `json:"security_warning_dismissed"`
}

// NewLocalPreferences loads the preferences file at path. A missing file is
// an empty state; "" or ":memory:" keeps everything in memory.
func NewLocalPreferences(path string) (LocalPreferences, error) {
	if path == "" {
		path = ":memory:"
	}

	p := &localPreferences{
		path:     path,
		inMemory: path == ":memory:" || path == "memory",
	}
	if err := p.load(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *localPreferences) DerivationSeed() ([]byte, []byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.state.Seed == "" {
		return nil, nil, ErrSeedNotFound
	}

	seed, err := base64.StdEncoding.DecodeString(p.state.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: seed: %w", ErrCorruptedPreferences, err)
	}

	var fingerprint []byte
	if p.state.DerivationFingerprint != "" {
		fingerprint, err = hex.DecodeString(p.state.DerivationFingerprint)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: derivation fingerprint: %w", ErrCorruptedPreferences, err)
		}
	}

	return seed, fingerprint, nil
}

func (p *localPreferences) SaveDerivationSeed(seed, fingerprint []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.state
	next.Seed = base64.StdEncoding.EncodeToString(seed)
	next.DerivationFingerprint = hex.EncodeToString(fingerprint)
	return p.persist(next)
}

func (p *localPreferences) UpdateDerivationFingerprint(fingerprint []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.state
	next.DerivationFingerprint = hex.EncodeToString(fingerprint)
	return p.persist(next)
}

func (p *localPreferences) SecurityWarningDismissed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.SecurityWarningDismissed
}

func (p *localPreferences) SetSecurityWarningDismissed(dismissed bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.state
	next.SecurityWarningDismissed = dismissed
	return p.persist(next)
}

func (p *localPreferences) load() error {
	if p.inMemory {
		return nil
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local preferences file: %w", err)
	}

	var st localPersistedPreferences
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: decode local preferences file: %w", ErrCorruptedPreferences, err)
	}

	p.state = st
	return nil
}

// persist writes next and adopts it only when the write succeeds. Callers
// hold p.mu.
func (p *localPreferences) persist(next localPersistedPreferences) error {
	if p.inMemory {
		p.state = next
		return nil
	}

	dir := filepath.Dir(p.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create local preferences dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local preferences: %w", err)
	}

	tmp := p.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write local preferences file: %w", err)
	}
	if err = os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("replace local preferences file: %w", err)
	}

	p.state = next
	return nil
}
