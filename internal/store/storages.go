// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-profile-client/internal/config"
	"github.com/MKhiriev/go-profile-client/internal/logger"
)

// ClientStorages groups the client-side storage used by the service layer.
type ClientStorages struct {
	// Session holds the persisted bearer token.
	Session SessionStore

	closer io.Closer
}

// NewClientStorages opens the session store selected by cfg.Driver:
//   - "sqlite": opens cfg.DB.DSN (creating the file) and runs migrations;
//   - "bolt":   opens cfg.DB.DSN as a bbolt file.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &ClientStorages{Session: NewSQLiteSessionStore(db, logger), closer: db}, nil

	case config.DriverBolt:
		bolt, err := NewBoltSessionStore(cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("bolt connection error: %w", err)
		}
		return &ClientStorages{Session: bolt, closer: bolt}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
