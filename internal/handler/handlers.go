// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the stub profile server.
package handler

import (
	"github.com/MKhiriev/go-profile-client/internal/config"
	"github.com/MKhiriev/go-profile-client/internal/handler/http"
	"github.com/MKhiriev/go-profile-client/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(profiles http.ProfileService, cfg config.StubServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(profiles, logger)}, nil
}
