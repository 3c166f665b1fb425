package service

import (
	"errors"

	"github.com/MKhiriev/xagcl/internal/adapter"
	"github.com/MKhiriev/xagcl/internal/logger"
	"github.com/MKhiriev/xagcl/internal/store"
)

// ClientServices groups the services the client application runs on.
type ClientServices struct {
	Acquisition AcquisitionService
}

// NewClientServices builds the client service layer.
func NewClientServices(tokens TokenProvider, storages *store.ClientStorages, xagAdapter adapter.XagAdapter, logger *logger.Logger) (*ClientServices, error) {
	if tokens == nil || storages == nil || storages.Accounts == nil || xagAdapter == nil {
		return nil, errors.New("client services: missing dependency")
	}

	return &ClientServices{
		Acquisition: NewClientAcquisitionService(tokens, xagAdapter, storages.Accounts, logger),
	}, nil
}
