// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-key-keeper/models"
)

const (
	FieldProvider  = "provider"
	FieldModelName = "model_name"
	FieldBaseURL   = "base_url"
	FieldNickname  = "nickname"
	FieldModels    = "models"
)

// MaxNicknameLength bounds [models.Model.Nickname] in runes.
const MaxNicknameLength = 64

type ModelValidator struct {
}

func NewModelValidator() Validator {
	return &ModelValidator{}
}

func (v *ModelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Model:
		return v.validateModel(ctx, value, fields...)
	case *models.Model:
		return v.validateModel(ctx, *value, fields...)

	case []models.Model:
		return v.validateModels(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ModelValidator) validateModel(_ context.Context, m models.Model, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProvider, FieldModelName, FieldBaseURL, FieldNickname}
	}

	for _, f := range fields {
		switch f {
		case FieldProvider:
			if strings.TrimSpace(m.Provider) == "" {
				return ErrEmptyProvider
			}
		case FieldModelName:
			if strings.TrimSpace(m.ModelName) == "" {
				return ErrEmptyModelName
			}
		case FieldBaseURL:
			if m.BaseURL != "" && !isHTTPURL(m.BaseURL) {
				return ErrInvalidBaseURL
			}
		case FieldNickname:
			if utf8.RuneCountInString(m.Nickname) > MaxNicknameLength {
				return ErrNicknameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateModels checks every element and that non-empty ids are unique.
// An empty collection is valid: saving it clears the stored models.
func (v *ModelValidator) validateModels(ctx context.Context, items []models.Model, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldModels}
	}

	for _, f := range fields {
		switch f {
		case FieldModels:
			seen := make(map[string]struct{}, len(items))
			for i, m := range items {
				if err := v.validateModel(ctx, m); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
				if m.ID == "" {
					continue
				}
				if _, dup := seen[m.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateID)
				}
				seen[m.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
