// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/xagcl/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// failure class. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrMalformedResponse):
		return fmt.Errorf("%w: %w", ErrParse, err)
	case errors.Is(err, adapter.ErrNetwork), errors.Is(err, adapter.ErrUnexpectedStatus):
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	case errors.Is(err, adapter.ErrTokenNotSet):
		return fmt.Errorf("%w: %w", ErrConfig, err)
	default:
		return err
	}
}
