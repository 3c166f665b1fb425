// Package utils provides general-purpose helpers shared by the client
// packages: the preconfigured HTTP client and run identifier generation.
package utils
