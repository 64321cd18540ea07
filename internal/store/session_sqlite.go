// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-client/internal/logger"
)

type sqliteSessionStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSessionStore returns a [SessionStore] over an already migrated
// database.
func NewSQLiteSessionStore(db *DB, logger *logger.Logger) SessionStore {
	return &sqliteSessionStore{db: db, logger: logger}
}

func (s *sqliteSessionStore) GetToken(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTokenQuery()
	if err != nil {
		return "", err
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteSessionStore.GetToken").Msg("failed to query session token")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	if token == "" {
		return "", ErrSessionNotFound
	}

	return token, nil
}

func (s *sqliteSessionStore) SaveToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveTokenQuery(token)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteSessionStore.SaveToken").Msg("failed to upsert session token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStore) DeleteToken(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTokenQuery()
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteSessionStore.DeleteToken").Msg("failed to delete session token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
