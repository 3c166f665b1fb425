// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants that do not depend on the command line.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Runtime.IdleTimeout < 0 {
		return ErrInvalidRuntimeConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.AccountsFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Runtime.IdleTimeout < 0 {
		return ErrInvalidRuntimeConfigs
	}

	if !cfg.Selection.Type.Valid() {
		return ErrInvalidSelection
	}

	return nil
}
