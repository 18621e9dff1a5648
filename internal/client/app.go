// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/workers"
	"github.com/MKhiriev/go-key-keeper/models"
)

const (
	StepEnsureMasterKey  = "ensure-master-key"
	StepSecurityAdvisory = "security-advisory"
)

type App struct {
	services  *service.Services
	secrets   secretstore.SecretStore
	cfg       config.App
	bootstrap *workers.Steps
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	stdin     io.Reader
	stdout    io.Writer
	clipboard func(string) error
}

// Option customizes an [App].
type Option func(*App)

// WithIO replaces standard input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.stdin = in
		a.stdout = out
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *App) { a.clipboard = write }
}

// NewApp wires the commands to services. prompt may be nil.
func NewApp(services *service.Services, secrets secretstore.SecretStore, cfg config.App, prompt Prompt, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) *App {
	if log == nil {
		log = logger.Nop()
	}

	a := &App{
		services:  services,
		secrets:   secrets,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.bootstrap = workers.NewSteps(log, workers.Step{
		Name: StepEnsureMasterKey,
		Run: func(ctx context.Context) error {
			_, err := services.MasterKey.Initialize(ctx)
			return err
		},
	})
	if prompt != nil {
		a.bootstrap.Add(workers.Step{Name: StepSecurityAdvisory, Run: prompt.Run})
	}

	return a
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		a.logger.Error().Str("func", "App.Run").Str("command", args[0]).Msg("unknown command")
		a.printUsage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	if cmd.bootstrap {
		if err := a.runBootstrap(ctx); err != nil {
			return err
		}
	}

	return cmd.run(a, ctx, args[1:])
}

// runBootstrap fails only when the master key cannot be ensured; the other
// steps are best effort.
func (a *App) runBootstrap(ctx context.Context) error {
	results := a.bootstrap.Run(ctx)

	if err := results.Err(StepEnsureMasterKey); err != nil {
		return err
	}
	if err := results.Err(StepSecurityAdvisory); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.runBootstrap").Msg("security advisory prompt failed")
	}

	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}
