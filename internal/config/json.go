package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the layout of config.json. Only token is
// required; every other key falls back to env or defaults.
type StructuredJSONConfig struct {
	Token          string   `json:"token"`
	CopyPassword   bool     `json:"copy_password,omitempty"`
	APIAddress     string   `json:"api_address,omitempty"`
	RequestTimeout Duration `json:"request_timeout,omitempty"`
	AccountsFile   string   `json:"accounts_file,omitempty"`
	IdleTimeout    Duration `json:"idle_timeout,omitempty"`
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
			Token:        jsonCfg.Token,
			CopyPassword: jsonCfg.CopyPassword,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.APIAddress,
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
		},
		Storage: Storage{
			AccountsFile: jsonCfg.AccountsFile,
		},
		Runtime: Runtime{
			IdleTimeout: time.Duration(jsonCfg.IdleTimeout),
		},
		JSONFilePath: "",
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
		if value != math.Trunc(value) || value < math.MinInt64 || value >= math.MaxInt64 {
			return fmt.Errorf("invalid duration %s: want whole nanoseconds within int64", string(b))
		}
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
