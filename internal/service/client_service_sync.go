// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/store"
)

type clientProfileSyncService struct {
	sessions      store.SessionStore
	profiles      ClientProfileService
	defaultAvatar string
}

// NewClientProfileSyncService builds the refresh routine. defaultAvatar is
// passed to the renderer for profiles without an avatar.
func NewClientProfileSyncService(sessions store.SessionStore, profiles ClientProfileService, defaultAvatar string) ClientProfileSyncService {
	return &clientProfileSyncService{sessions: sessions, profiles: profiles, defaultAvatar: defaultAvatar}
}

func (s *clientProfileSyncService) Refresh(ctx context.Context, renderer ProfileRenderer) {
	log := logger.FromContext(ctx)

	token, err := s.sessions.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Str("func", "clientProfileSyncService.Refresh").Msg("failed to read session token")
		}
		return
	}

	profile, err := s.profiles.Fetch(ctx, token)
	if err != nil {
		log.Err(err).
			Str("func", "clientProfileSyncService.Refresh").
			Bool("session_rejected", IsSessionRejected(err)).
			Msg("failed to refresh profile")
		return
	}

	renderer.ApplyProfile(profile, s.defaultAvatar)
}
