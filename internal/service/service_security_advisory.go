// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
	"github.com/MKhiriev/go-key-keeper/internal/store"
)

type securityAdvisory struct {
	backend secretstore.Kind
	prefs   store.LocalPreferences
	logger  *logger.Logger
}

// NewSecurityAdvisory creates the advisory for backend. It only ever
// applies to the derived store.
func NewSecurityAdvisory(backend secretstore.Kind, prefs store.LocalPreferences, log *logger.Logger) SecurityAdvisory {
	if log == nil {
		log = logger.Nop()
	}
	return &securityAdvisory{backend: backend, prefs: prefs, logger: log}
}

func (a *securityAdvisory) ShouldShow() bool {
	return a.backend == secretstore.KindDerived && !a.prefs.SecurityWarningDismissed()
}

func (a *securityAdvisory) Message() string { return app.MsgSecurityAdvisory }

func (a *securityAdvisory) Dismiss() error {
	if err := a.prefs.SetSecurityWarningDismissed(true); err != nil {
		a.logger.Err(err).Str("func", "securityAdvisory.Dismiss").Msg("error saving advisory dismissal")
		return fmt.Errorf("dismiss security advisory: %w", err)
	}
	return nil
}

func (a *securityAdvisory) Raise(context.Context) {
	if !a.ShouldShow() {
		return
	}
	a.logger.Warn().Str("func", "securityAdvisory.Raise").Msg(a.Message())
}
