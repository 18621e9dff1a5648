// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
)

// UserError is an error whose message is already fit for the user.
type UserError struct {
	msg string
}

// NewUserError returns a sentinel error carrying msg.
func NewUserError(msg string) *UserError {
	return &UserError{msg: msg}
}

func (e *UserError) Error() string { return e.msg }

func (e *UserError) UserMessage() string { return e.msg }

// userMessager is implemented by errors that carry their own user-facing
// text.
type userMessager interface {
	UserMessage() string
}

var validationErrors = []error{
	validators.ErrEmptyProvider,
	validators.ErrEmptyModelName,
	validators.ErrInvalidBaseURL,
	validators.ErrNicknameTooLong,
	validators.ErrDuplicateID,
}

// UserMessage maps err to the fixed text shown to the user. Causes and
// internal details never leak into the result.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var um userMessager
	if errors.As(err, &um) {
		return um.UserMessage()
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return fmt.Sprintf("%s: %s", MsgInvalidModel, v.Error())
		}
	}

	switch {
	case errors.Is(err, crypto.ErrAuthenticationFailure):
		return MsgDecryptionFailed
	case errors.Is(err, crypto.ErrInvalidKeyFormat):
		return MsgInvalidMasterKey
	case errors.Is(err, crypto.ErrCiphertextFormat):
		return MsgCorruptedField
	case errors.Is(err, secretstore.ErrStoreUnavailable):
		return MsgStoreUnavailable
	default:
		return MsgUnexpectedError
	}
}
