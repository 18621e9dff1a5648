// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "github.com/MKhiriev/go-key-keeper/internal/app"

var (
	// ErrUsage is returned for an unknown command or bad arguments.
	ErrUsage = app.NewUserError(`invalid usage, run "keykeeper help"`)

	// ErrConfirmationRequired is returned by destructive commands run
	// without -yes.
	ErrConfirmationRequired = app.NewUserError("refusing to delete the master key without -yes")

	// ErrInvalidModelsInput is returned when the models document cannot be
	// parsed.
	ErrInvalidModelsInput = app.NewUserError("cannot read models: expected a JSON array of models")

	// ErrClipboard is returned when the key cannot be copied.
	ErrClipboard = app.NewUserError("cannot copy to the clipboard")
)
