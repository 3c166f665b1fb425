// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run performs one acquisition and blocks until the idle wait ends.
	Run(ctx context.Context) error
}

// Clipboard receives the generated password when copying is enabled.
type Clipboard interface {
	WriteAll(text string) error
}
