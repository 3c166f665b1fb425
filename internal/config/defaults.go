package config

import "time"

const (
	// DefaultJSONFilePath is read when CONFIG is not set.
	DefaultJSONFilePath = "config.json"
	// DefaultHTTPAddress is the public generator API.
	DefaultHTTPAddress = "https://xag.fly.dev"
	// DefaultRequestTimeout bounds each call to the generator API.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultAccountsFile is where generated accounts are appended.
	DefaultAccountsFile = "accounts.txt"
	// DefaultIdleTimeout keeps the console open after the run.
	DefaultIdleTimeout = 60 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			AccountsFile: DefaultAccountsFile,
		},
		Runtime: Runtime{
			IdleTimeout: DefaultIdleTimeout,
		},
	}
}
