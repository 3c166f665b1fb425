package store

import (
	"fmt"

	"github.com/MKhiriev/xagcl/internal/config"
	"github.com/MKhiriev/xagcl/internal/logger"
)

// ClientStorages groups all client-side stores into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// Accounts is the append-only accounts file.
	Accounts AccountStore
}

// NewClientStorages initialises the client storage layer from cfg.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	accounts, err := NewAccountsFile(cfg.AccountsFile, logger)
	if err != nil {
		return nil, fmt.Errorf("create accounts file store: %w", err)
	}

	return &ClientStorages{Accounts: accounts}, nil
}
