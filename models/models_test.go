// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSensitiveField(t *testing.T) {
	tests := []struct {
		raw       string
		kind      FieldKind
		encrypted bool
		empty     bool
	}{
		{raw: "", kind: FieldPlain, empty: true},
		{raw: "sk-123", kind: FieldPlain},
		{raw: "enc", kind: FieldPlain},
		{raw: "ENC:abc", kind: FieldPlain},
		{raw: "enc:", kind: FieldEncrypted, encrypted: true},
		{raw: "enc:AAAA", kind: FieldEncrypted, encrypted: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			f := ParseSensitiveField(tt.raw)
			assert.Equal(t, tt.kind, f.Kind())
			assert.Equal(t, tt.encrypted, f.IsEncrypted())
			assert.Equal(t, tt.empty, f.IsEmpty())
			assert.Equal(t, tt.raw, f.String())
		})
	}
}

func TestSensitiveField_Constructors(t *testing.T) {
	assert.False(t, Plain("enc:looks-encrypted").IsEncrypted())
	assert.True(t, Encrypted("enc:x").IsEncrypted())
}

func TestLoadedModel_Fold(t *testing.T) {
	ok := LoadedModel{Model: Model{ID: "a", APIKey: "sk"}}
	failed := LoadedModel{Model: Model{ID: "b", APIKey: "garbage"}, KeyErr: errors.New("auth")}

	assert.Equal(t, "sk", ok.Fold().APIKey)
	assert.Empty(t, failed.Fold().APIKey)
	assert.Equal(t, "garbage", failed.APIKey, "Fold does not mutate the loaded model")

	folded := FoldModels([]LoadedModel{ok, failed})
	assert.Len(t, folded, 2)
	assert.Equal(t, "b", folded[1].ID)
}

func TestModel_DisplayName(t *testing.T) {
	assert.Equal(t, "work", Model{ID: "id", Nickname: "work"}.DisplayName())
	assert.Equal(t, "id", Model{ID: "id"}.DisplayName())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" 1.2.0 ", "2026-01-01", "abc")
	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.False(t, info.IsDev())
	assert.True(t, NewAppBuildInfo("", "", "").IsDev())
}
