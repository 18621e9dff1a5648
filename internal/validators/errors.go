// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyProvider   = errors.New("provider is required")
	ErrEmptyModelName  = errors.New("model name is required")
	ErrInvalidBaseURL  = errors.New("base URL must be an absolute http(s) URL")
	ErrNicknameTooLong = errors.New("nickname is too long")
	ErrDuplicateID     = errors.New("duplicate model id")
)
