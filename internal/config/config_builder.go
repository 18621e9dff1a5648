// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// layer is one configuration source. Later layers override earlier ones.
type layer struct {
	source string
	cfg    *StructuredConfig
}

// configBuilder stacks defaults, environment, flags and the JSON file. Source
// errors are collected and reported together by build.
type configBuilder struct {
	layers []layer
	rest   []string
	errs   []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", Defaults(), nil)
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := new(StructuredConfig)
	return b.add("environment", envCfg, parseEnv(envCfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagCfg, rest, err := parseFlags(args)
	b.rest = rest
	return b.add("flags", flagCfg, err)
}

// configFilePath returns the JSON file named by the highest-priority layer.
func (b *configBuilder) configFilePath() string {
	for _, l := range slices.Backward(b.layers) {
		if l.cfg.JSONFilePath != "" {
			return l.cfg.JSONFilePath
		}
	}
	return ""
}

// withJSON must run last: the file path itself comes from the earlier layers.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.configFilePath()
	if path == "" {
		return b
	}
	jsonCfg, err := parseJSON(path)
	return b.add("config file "+path, jsonCfg, err)
}
