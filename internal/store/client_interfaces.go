package store

import (
	"github.com/MKhiriev/xagcl/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// AccountStore persists generated accounts.
type AccountStore interface {
	// Append adds one account to the end of the store. Existing entries are
	// never modified or reordered.
	Append(account models.GeneratedAccount) error
}
