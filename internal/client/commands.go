// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
	"github.com/MKhiriev/go-key-keeper/internal/tui"
	"github.com/MKhiriev/go-key-keeper/models"
)

type command struct {
	// bootstrap runs the startup steps before the command.
	bootstrap bool
	run       func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"init":    {bootstrap: true, run: (*App).cmdInit},
	"export":  {run: (*App).cmdExport},
	"status":  {run: (*App).cmdStatus},
	"models":  {run: (*App).cmdModels},
	"key":     {run: (*App).cmdKey},
	"version": {run: (*App).cmdVersion},
	"help":    {run: (*App).cmdHelp},
}

const usage = `usage: keykeeper [global flags] <command> [flags]

commands:
  init                  create the master key if it does not exist
  export [-copy]        print the master key or copy it to the clipboard
  status                show the secret storage and master key state
  models save [-f file] replace the stored models with a JSON array (stdin by default)
  models list [-json]   list the stored models
  key delete -yes       delete the master key
  version               show build information
  help                  show this message
`

func (a *App) printUsage() {
	a.printf("%s", usage)
}

func (a *App) cmdHelp(context.Context, []string) error {
	a.printUsage()
	return nil
}

func (a *App) cmdVersion(context.Context, []string) error {
	a.printf("%s\n", tui.RenderBuildInfo(a.buildInfo))
	return nil
}

func (a *App) cmdInit(_ context.Context, _ []string) error {
	backend := a.services.MasterKey.Backend()
	a.printf("master key is ready (%s)\n", backend.HostLabel())
	if a.derivationChanged() {
		a.printf("warning: the device identity changed since the key was stored, the key may be unreadable\n")
	}
	return nil
}

func (a *App) cmdExport(ctx context.Context, args []string) error {
	fs := newFlagSet("export")
	toClipboard := fs.Bool("copy", false, "copy the key to the clipboard instead of printing it")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	key, err := a.services.MasterKey.Export(ctx)
	if err != nil {
		return err
	}

	if *toClipboard {
		if err = a.clipboard(key); err != nil {
			a.logger.Err(err).Str("func", "App.cmdExport").Msg("error writing to the clipboard")
			return fmt.Errorf("%w: %w", ErrClipboard, err)
		}
		a.printf("master key copied to the clipboard\n")
		return nil
	}

	a.printf("%s\n", key)
	return nil
}

func (a *App) cmdStatus(ctx context.Context, _ []string) error {
	backend := a.services.MasterKey.Backend()

	a.printf("storage: %s (%s)\n", backend, backend.HostLabel())
	a.printf("master key: %s\n", presence(a.services.MasterKey.Exists(ctx)))

	if backend == secretstore.KindDerived {
		a.printf("device identity changed: %s\n", yesNo(a.derivationChanged()))
		advisory := "dismissed"
		if a.services.Advisory.ShouldShow() {
			advisory = "pending"
		}
		a.printf("security advisory: %s\n", advisory)
	}

	return nil
}

func (a *App) cmdModels(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: models needs a subcommand", ErrUsage)
	}

	switch args[0] {
	case "save":
		return a.modelsSave(ctx, args[1:])
	case "list":
		return a.modelsList(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown models subcommand %q", ErrUsage, args[0])
	}
}

func (a *App) modelsSave(ctx context.Context, args []string) error {
	fs := newFlagSet("models save")
	file := fs.String("f", "-", "file with a JSON array of models, - for stdin")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	in := a.stdin
	if *file != "-" {
		f, err := os.Open(*file)
		if err != nil {
			return fmt.Errorf("open models file: %w", err)
		}
		defer f.Close()
		in = f
	}

	items, err := decodeModels(in)
	if err != nil {
		a.logger.Err(err).Str("func", "App.modelsSave").Msg("error decoding models")
		return err
	}

	if err = a.runBootstrap(ctx); err != nil {
		return err
	}

	saved, err := a.services.Models.SaveModels(ctx, items)
	if err != nil {
		return err
	}

	a.printf("saved %d models\n", len(saved))
	return nil
}

func (a *App) modelsList(ctx context.Context, args []string) error {
	fs := newFlagSet("models list")
	asJSON := fs.Bool("json", false, "print the models as JSON, API keys included")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	loaded, err := a.services.Models.LoadModels(ctx)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(models.FoldModels(loaded))
	}

	if len(loaded) == 0 {
		a.printf("no models stored\n")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NICKNAME", "PROVIDER", "MODEL", "BASE URL", "API KEY")
	for _, m := range loaded {
		t.Row(m.ID, m.Nickname, m.Provider, m.ModelName, m.BaseURL, keyState(m))
	}
	a.printf("%s\n", t.String())

	return nil
}

func (a *App) cmdKey(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] != "delete" {
		return fmt.Errorf("%w: expected \"key delete\"", ErrUsage)
	}

	fs := newFlagSet("key delete")
	yes := fs.Bool("yes", false, "confirm the deletion")
	if err := parseFlags(fs, args[1:]); err != nil {
		return err
	}
	if !*yes {
		return ErrConfirmationRequired
	}

	if err := a.secrets.DeletePassword(ctx, a.cfg.ServiceName, a.cfg.MasterKeyUser); err != nil {
		a.logger.Err(err).Str("func", "App.cmdKey").Msg("error deleting the master key")
		return err
	}
	a.logger.Warn().Str("func", "App.cmdKey").Msg("master key deleted")
	a.printf("master key deleted\n")

	return nil
}

func (a *App) derivationChanged() bool {
	r, ok := a.secrets.(derivationReporter)
	return ok && r.DerivationChanged()
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected argument %q", ErrUsage, fs.Name(), fs.Arg(0))
	}
	return nil
}

func decodeModels(r io.Reader) ([]models.Model, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var items []models.Model
	// an empty document is rejected; "[]" clears the collection
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidModelsInput, err)
	}
	if items == nil {
		items = []models.Model{}
	}

	return items, nil
}

func keyState(m models.LoadedModel) string {
	switch {
	case m.KeyErr != nil:
		return "unrecoverable"
	case m.APIKey != "":
		return "set"
	default:
		return "-"
	}
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "absent"
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
