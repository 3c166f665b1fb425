package service

import (
	"context"

	"github.com/MKhiriev/xagcl/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// TokenProvider supplies the api-token. Implementations return an error
// wrapping a configuration error when no usable token exists.
type TokenProvider interface {
	Token() (string, error)
}

// AcquisitionService defines one end-to-end account acquisition. Methods are
// meant to be called in order: Authorize, Stock, Generate, Save.
type AcquisitionService interface {
	// Authorize loads the token and hands it to the transport. It fails with
	// [ErrConfig] before any network traffic when the token is missing.
	Authorize(ctx context.Context) error

	// Stock returns the current number of available accounts per tier.
	// Failures are reported as [ErrNetwork] or [ErrParse].
	Stock(ctx context.Context) (models.StockSnapshot, error)

	// Generate requests one account for selection. A refusal by the
	// generator is a rejected result, not an error.
	Generate(ctx context.Context, selection models.Selection) (models.GenerationResult, error)

	// Save appends a generated account to the accounts store. Failures are
	// reported as [ErrPersist].
	Save(account models.GeneratedAccount) error
}
