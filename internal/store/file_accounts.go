// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/xagcl/internal/logger"
	"github.com/MKhiriev/xagcl/models"
)

// accountsFile is the append-only plain-text implementation of
// [AccountStore]. Each account occupies one line in the form
// "email | password | username".
type accountsFile struct {
	path string

	mu sync.Mutex

	logger *logger.Logger
}

// NewAccountsFile constructs an [AccountStore] writing to path. The file is
// created on the first append, not here.
func NewAccountsFile(path string, logger *logger.Logger) (AccountStore, error) {
	if path == "" {
		return nil, ErrEmptyAccountsPath
	}

	return &accountsFile{path: path, logger: logger}, nil
}

// Append implements [AccountStore]. The file is opened in append mode,
// written with a single call, and closed before returning.
func (f *accountsFile) Append(account models.GeneratedAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open accounts file: %w", err)
	}

	if _, err = file.WriteString(account.Line() + "\n"); err != nil {
		_ = file.Close()
		return fmt.Errorf("write accounts file: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("close accounts file: %w", err)
	}

	f.logger.Info().Str("path", f.path).Msg("account appended")
	return nil
}
