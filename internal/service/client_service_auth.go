// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profile-client/internal/adapter"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/store"
	"github.com/MKhiriev/go-profile-client/models"
)

type clientAuthService struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
}

func NewClientAuthService(sessions store.SessionStore, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.Session{}, mapAdapterError(ErrAuthentication, err)
	}
	if session.IsEmpty() {
		return models.Session{}, mapAdapterError(ErrAuthentication, adapter.ErrMalformedResponse)
	}

	if err = a.sessions.SaveToken(ctx, session.Token); err != nil {
		log.Err(err).Str("func", "clientAuthService.Login").Msg("failed to persist session token")
		return models.Session{}, fmt.Errorf("%w: save session: %w", ErrAuthentication, err)
	}

	log.Info().Str("func", "clientAuthService.Login").Msg("session stored")
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.sessions.DeleteToken(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (a *clientAuthService) Token(ctx context.Context) (string, error) {
	return a.sessions.GetToken(ctx)
}
