package config

import "errors"

// Configuration errors. All of them are fatal: the client exits before
// contacting the generator API.
var (
	// ErrTokenMissing indicates that no non-empty token was found in
	// config.json or APP_TOKEN.
	ErrTokenMissing = errors.New("you need to put your token in config.json")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API address or negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty accounts file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRuntimeConfigs indicates invalid lifecycle settings
	// (for example, negative idle timeout).
	ErrInvalidRuntimeConfigs = errors.New("invalid runtime configuration")
	// ErrInvalidSelection indicates an unknown account type.
	ErrInvalidSelection = errors.New("invalid account selection")
)
