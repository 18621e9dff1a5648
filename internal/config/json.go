// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		ServiceName   string `json:"service_name"`
		MasterKeyUser string `json:"master_key_user"`
	} `json:"app,omitempty"`

	Secrets struct {
		Backend       string   `json:"backend"`
		DeviceLabel   string   `json:"device_label"`
		KDFIterations int      `json:"kdf_iterations"`
		ProbeTimeout  Duration `json:"probe_timeout"`
	} `json:"secrets,omitempty"`

	Storage struct {
		SecretsDSN string `json:"secrets_dsn"`
		ModelsDSN  string `json:"models_dsn"`
		StatePath  string `json:"state_path"`
	} `json:"storage,omitempty"`

	Log struct {
		Path string `json:"path"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ServiceName:   jsonCfg.App.ServiceName,
			MasterKeyUser: jsonCfg.App.MasterKeyUser,
		},
		Secrets: Secrets{
			Backend:       jsonCfg.Secrets.Backend,
			DeviceLabel:   jsonCfg.Secrets.DeviceLabel,
			KDFIterations: jsonCfg.Secrets.KDFIterations,
			ProbeTimeout:  time.Duration(jsonCfg.Secrets.ProbeTimeout),
		},
		Storage: Storage{
			SecretsDSN: jsonCfg.Storage.SecretsDSN,
			ModelsDSN:  jsonCfg.Storage.ModelsDSN,
			StatePath:  jsonCfg.Storage.StatePath,
		},
		Log: Log{
			Path: jsonCfg.Log.Path,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
