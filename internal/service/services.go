// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-key-keeper/internal/config"
	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
	"github.com/MKhiriev/go-key-keeper/internal/store"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/internal/validators"
)

type Services struct {
	MasterKey MasterKeyManager
	Models    ModelStorage
	Advisory  SecurityAdvisory
}

func NewServices(secrets secretstore.SecretStore, storages *store.Storages, cfg config.App, log *logger.Logger) *Services {
	advisory := NewSecurityAdvisory(secrets.Kind(), storages.LocalPreferences, log)
	masterKey := NewMasterKeyManager(secrets, cfg.ServiceName, cfg.MasterKeyUser, advisory, log)
	modelStorage := NewModelStorage(
		storages.ModelRepository,
		masterKey,
		crypto.NewFieldCipher(),
		validators.NewModelValidator(),
		utils.NewUUIDGenerator(),
		log,
	)

	return &Services{
		MasterKey: masterKey,
		Models:    modelStorage,
		Advisory:  advisory,
	}
}
