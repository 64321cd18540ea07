// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-profile-client/internal/adapter"
	"github.com/MKhiriev/go-profile-client/internal/bridge"
	"github.com/MKhiriev/go-profile-client/internal/config"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/service"
	"github.com/MKhiriev/go-profile-client/internal/store"
	"github.com/MKhiriev/go-profile-client/internal/tui"
	"github.com/MKhiriev/go-profile-client/models"
)

type App struct {
	storages *store.ClientStorages
	ui       UI
	logger   *logger.Logger
}

// NewApp wires the client from cfg. The caller must Run the app, which also
// releases the session store.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, cfg.App)

	cells := tui.NewCells()
	b := bridge.New(services, cells.Surface(), cfg.App.DefaultAvatar, log)
	ui := tui.New(b, services.AuthService, cells, buildInfo)

	return &App{storages: storages, ui: ui, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("failed to close session store")
		}
	}()

	a.logger.Info().Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Msg("client stopped")

	return nil
}
