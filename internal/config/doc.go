// Package config provides configuration loading, merging, and validation
// facilities for the xag client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. JSON config file (config.json in the working directory by default)
//  3. Built-in defaults
//
// Account type and test mode are not part of the file; they come from the
// positional command-line switches parsed by [ParseSwitches].
//
// The main entry point is [GetClientConfig].
package config
