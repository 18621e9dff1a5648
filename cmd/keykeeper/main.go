// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/client"
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
	"github.com/MKhiriev/go-key-keeper/internal/service"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/tui"
	"github.com/MKhiriev/go-key-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "keykeeper: %v\n", err)
		return 2
	}

	if err = os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "keykeeper: cannot create log directory: %v\n", err)
	}
	log := logger.NewFileLogger("go-key-keeper", cfg.Log.Path)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().Str("version", buildInfo.BuildVersion()).Bool("dev", buildInfo.IsDev()).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewStorages(ctx, cfg.Storage, log.WithComponent("store"))
	if err != nil {
		log.Err(err).Msg("error opening local storage")
		fmt.Fprintf(os.Stderr, "keykeeper: %s\n", app.UserMessage(err))
		return 1
	}
	defer storages.Close()

	secrets, err := secretstore.Select(ctx, cfg.Secrets, cfg.App.ServiceName, secretstore.Backends{
		Open:  secretstore.SQLiteOpener(cfg.Storage.SecretsDSN, log.WithComponent("store")),
		Prefs: storages.LocalPreferences,
	}, log.WithComponent("secretstore"))
	if err != nil {
		log.Err(err).Msg("error selecting secret store")
		fmt.Fprintf(os.Stderr, "keykeeper: %s\n", app.UserMessage(err))
		return 1
	}
	if c, ok := secrets.(io.Closer); ok {
		defer c.Close()
	}

	services := service.NewServices(secrets, storages, cfg.App, log.WithComponent("service"))
	prompt := tui.NewAdvisoryPrompt(services.Advisory, log.WithComponent("tui"))

	var c client.Client = client.NewApp(services, secrets, cfg.App, prompt, buildInfo, log)
	if err = c.Run(ctx, args); err != nil {
		log.Err(err).Strs("args", args).Msg("command failed")
		fmt.Fprintf(os.Stderr, "keykeeper: %s\n", app.UserMessage(err))
		if errors.Is(err, client.ErrUsage) {
			return 2
		}
		return 1
	}

	return 0
}
