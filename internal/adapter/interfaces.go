// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the xag
// generator API.
//
// The primary abstraction is [XagAdapter], which decouples the service layer
// from HTTP. The package ships a resty-based implementation
// ([NewHTTPXagAdapter]).
//
// Error values defined in errors.go let callers classify failures with
// [errors.Is]: [ErrNetwork] and [ErrUnexpectedStatus] for transport problems,
// [ErrMalformedResponse] for bodies that cannot be decoded. A refusal by the
// generator is not an error; it is returned as a rejected
// [models.GenerationResult].
package adapter

import (
	"context"

	"github.com/MKhiriev/xagcl/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/xag_adapter_mock.go -package=mock

// XagAdapter defines communication with the generator API.
type XagAdapter interface {
	// SetToken stores the api-token that is attached to generation requests.
	SetToken(token string)

	// FetchStock queries the unauthenticated stock endpoint and returns the
	// current counts.
	FetchStock(ctx context.Context) (models.StockSnapshot, error)

	// GenerateAccount requests one account of selection.Type, passing
	// selection.TestMode through to the generator. The result is either a
	// generated account or a rejection carrying the generator's message.
	GenerateAccount(ctx context.Context, selection models.Selection) (models.GenerationResult, error)
}
