// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client's session token between runs.
//
// Two backends implement [SessionStore]: an SQLite table managed by goose
// migrations and a bbolt bucket. [NewClientStorages] picks one from the
// configured driver.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore holds at most one session token under a fixed key.
type SessionStore interface {
	// GetToken returns the stored token, or [ErrSessionNotFound] when no
	// token (or an empty one) is stored.
	GetToken(ctx context.Context) (string, error)

	// SaveToken stores token, replacing any previous one.
	SaveToken(ctx context.Context, token string) error

	// DeleteToken removes the stored token. Deleting an absent token is not
	// an error.
	DeleteToken(ctx context.Context) error
}
