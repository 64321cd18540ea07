// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-client/internal/adapter"
)

// mapAdapterError wraps the adapter's transport error into the operation
// error op, keeping the cause matchable.
func mapAdapterError(op error, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", op, err)
}

// IsSessionRejected reports whether err was caused by the server refusing
// the bearer token (HTTP 401).
func IsSessionRejected(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}
