package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/xagcl/internal/adapter"
	"github.com/MKhiriev/xagcl/internal/logger"
	"github.com/MKhiriev/xagcl/internal/store"
	"github.com/MKhiriev/xagcl/models"
)

type clientAcquisitionService struct {
	tokens   TokenProvider
	adapter  adapter.XagAdapter
	accounts store.AccountStore

	logger *logger.Logger
}

// NewClientAcquisitionService wires the token source, the generator
// transport and the accounts store.
func NewClientAcquisitionService(tokens TokenProvider, xagAdapter adapter.XagAdapter, accounts store.AccountStore, logger *logger.Logger) AcquisitionService {
	return &clientAcquisitionService{
		tokens:   tokens,
		adapter:  xagAdapter,
		accounts: accounts,
		logger:   logger,
	}
}

func (s *clientAcquisitionService) Authorize(_ context.Context) error {
	token, err := s.tokens.Token()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	s.adapter.SetToken(token)
	s.logger.Debug().Msg("api token loaded")
	return nil
}

func (s *clientAcquisitionService) Stock(ctx context.Context) (models.StockSnapshot, error) {
	stock, err := s.adapter.FetchStock(ctx)
	if err != nil {
		return models.StockSnapshot{}, mapAdapterError(err)
	}

	s.logger.Info().
		Int("total", stock.Total).
		Int("plus", stock.Plus).
		Int("normal", stock.Normal).
		Msg("stock fetched")
	return stock, nil
}

func (s *clientAcquisitionService) Generate(ctx context.Context, selection models.Selection) (models.GenerationResult, error) {
	result, err := s.adapter.GenerateAccount(ctx, selection)
	if err != nil {
		return models.GenerationResult{}, mapAdapterError(err)
	}

	if (result.Generated == nil) == (result.Rejected == nil) {
		return models.GenerationResult{}, ErrInvalidResult
	}

	event := s.logger.Info().
		Str("type", selection.Type.String()).
		Bool("test_mode", selection.TestMode)
	if result.Rejected != nil {
		event.Str("rejection", result.Rejected.Message).Msg("generation rejected")
	} else {
		event.Str("username", result.Generated.Username).Msg("account generated")
	}

	return result, nil
}

func (s *clientAcquisitionService) Save(account models.GeneratedAccount) error {
	if err := s.accounts.Append(account); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}

	return nil
}
