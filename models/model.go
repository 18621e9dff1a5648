// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Model is a configured AI model provider entry. APIKey is the only
// sensitive field: at rest it always holds an encrypted field value, in
// memory it holds the plaintext key (or "" when it could not be recovered).
type Model struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Provider  string    `json:"provider"`
	ModelName string    `json:"model_name"`
	BaseURL   string    `json:"base_url"`
	APIKey    string    `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName returns the nickname, falling back to the ID.
func (m Model) DisplayName() string {
	if m.Nickname != "" {
		return m.Nickname
	}
	return m.ID
}

// LoadedModel is a model returned from storage together with the reason its
// API key could not be decrypted. KeyErr is nil when APIKey is usable as is.
type LoadedModel struct {
	Model
	KeyErr error
}

// Fold drops the decryption outcome and returns the model as the UI sees it:
// a key that failed to decrypt is simply empty.
func (m LoadedModel) Fold() Model {
	out := m.Model
	if m.KeyErr != nil {
		out.APIKey = ""
	}
	return out
}

// FoldModels applies [LoadedModel.Fold] to every element.
func FoldModels(loaded []LoadedModel) []Model {
	out := make([]Model, 0, len(loaded))
	for _, m := range loaded {
		out = append(out, m.Fold())
	}
	return out
}
