// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/stubserver"
	"github.com/MKhiriev/go-profile-client/models"
)

// ProfileService is the domain behind the HTTP routes.
// [stubserver.Service] satisfies it.
type ProfileService interface {
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)
	ParseToken(ctx context.Context, token string) (string, error)
	Profile(ctx context.Context, userID string) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID string, edit models.ProfileEdit) error
	SaveAvatar(ctx context.Context, userID string, avatar stubserver.Avatar) (string, error)
	Avatar(ctx context.Context, id string) (stubserver.Avatar, error)
}

type Handler struct {
	profiles ProfileService

	logger *logger.Logger
}

func NewHandler(profiles ProfileService, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		profiles: profiles,
		logger:   logger,
	}
}
