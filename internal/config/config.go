// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the xag
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, an optional JSON file, and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the API token and operator preferences.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the location of the accounts file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Runtime holds process lifecycle settings.
	Runtime Runtime `envPrefix:"RUNTIME_"`

	// JSONFilePath is the path to the JSON configuration file.
	// Populated via the CONFIG environment variable; defaults to
	// [DefaultJSONFilePath].
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Token is the secret sent in the api-token header of generation
	// requests. Must be kept confidential.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// CopyPassword enables copying the generated password to the system
	// clipboard.
	// Env: APP_COPY_PASSWORD
	CopyPassword bool `env:"COPY_PASSWORD"`
}

// Adapter holds settings for the outbound connection to the generator API.
type Adapter struct {
	// HTTPAddress is the base URL of the generator API
	// (e.g. "https://xag.fly.dev").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds file-system settings for persisted results.
type Storage struct {
	// AccountsFile is the append-only file generated accounts are written to.
	// Env: STORAGE_ACCOUNTS_FILE
	AccountsFile string `env:"ACCOUNTS_FILE"`
}

// Runtime holds settings that control the process lifecycle.
type Runtime struct {
	// IdleTimeout is how long the process stays open after reporting the
	// outcome so the operator can read it.
	// Env: RUNTIME_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (first source wins for non-zero
// fields):
//  1. Environment variables
//  2. JSON file (path resolved from source 1 or [DefaultJSONFilePath])
//  3. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
