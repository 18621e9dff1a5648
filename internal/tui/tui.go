// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal views of the command line client.
package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/service"
)

// ErrUnexpectedModel is returned when the program finishes with a model of
// an unknown type.
var ErrUnexpectedModel = errors.New("unexpected final model")

// AdvisoryPrompt shows the security advisory once per start while it
// applies. Without a terminal the advisory is logged instead.
type AdvisoryPrompt struct {
	advisory    service.SecurityAdvisory
	logger      *logger.Logger
	interactive func() bool
	options     []tea.ProgramOption
}

func NewAdvisoryPrompt(advisory service.SecurityAdvisory, log *logger.Logger, opts ...tea.ProgramOption) *AdvisoryPrompt {
	if log == nil {
		log = logger.Nop()
	}
	return &AdvisoryPrompt{
		advisory:    advisory,
		logger:      log,
		interactive: stdioIsTerminal,
		options:     opts,
	}
}

// Run shows the prompt and persists a dismissal.
func (p *AdvisoryPrompt) Run(ctx context.Context) error {
	if !p.advisory.ShouldShow() {
		return nil
	}

	if !p.interactive() {
		p.logger.Warn().Str("func", "AdvisoryPrompt.Run").Msg(p.advisory.Message())
		return nil
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, p.options...)
	final, err := tea.NewProgram(newAdvisoryModel(p.advisory.Message()), opts...).Run()
	if err != nil {
		return err
	}

	m, ok := final.(advisoryModel)
	if !ok {
		return ErrUnexpectedModel
	}

	return p.apply(m.choice)
}

func (p *AdvisoryPrompt) apply(choice advisoryChoice) error {
	if choice != choiceDismissed {
		return nil
	}
	p.logger.Info().Str("func", "AdvisoryPrompt.Run").Msg("security advisory dismissed")
	return p.advisory.Dismiss()
}

func stdioIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
