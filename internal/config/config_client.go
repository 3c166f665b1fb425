package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/xagcl/models"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Token is the api-token secret. It may be empty here; emptiness is
	// reported by [ClientConfig.Token].
	Token string
	// CopyPassword enables copying generated passwords to the clipboard.
	CopyPassword bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the generator API.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// AccountsFile is the append-only accounts file path.
	AccountsFile string
}

// ClientRuntime contains process lifecycle settings.
type ClientRuntime struct {
	// IdleTimeout is how long the console stays open after the run.
	IdleTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig] and the command-line switches.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the remote API address and timeout.
	Adapter ClientAdapter
	// Storage contains the accounts file location.
	Storage ClientStorage
	// Runtime contains the idle wait settings.
	Runtime ClientRuntime
	// Selection is the account type and test mode chosen on the command line.
	Selection models.Selection
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration and the program arguments (without the
// program name).
//
// A missing token is not a validation error here: it is surfaced by
// [ClientConfig.Token] so the run can fail before any network call.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg, ParseSwitches(args))

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig, selection models.Selection) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Token:        cfg.App.Token,
			CopyPassword: cfg.App.CopyPassword,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			AccountsFile: cfg.Storage.AccountsFile,
		},
		Runtime: ClientRuntime{
			IdleTimeout: cfg.Runtime.IdleTimeout,
		},
		Selection: selection,
	}
}

// Token returns the configured API token exactly as written. It returns
// [ErrTokenMissing] when the token key is absent or empty.
func (cfg *ClientConfig) Token() (string, error) {
	if cfg.App.Token == "" {
		return "", ErrTokenMissing
	}

	return cfg.App.Token, nil
}
