// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-profile-client/internal/config"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/store"
	"github.com/MKhiriev/go-profile-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func testConfig(t *testing.T, driver string) *config.ClientConfig {
	t.Helper()

	return &config.ClientConfig{
		App:     config.ClientApp{DefaultAvatar: "/default.png"},
		Adapter: config.ClientAdapter{HTTPAddress: "localhost:8080"},
		Storage: config.ClientStorage{
			Driver: driver,
			DB:     config.ClientDB{DSN: filepath.Join(t.TempDir(), "session.db")},
		},
	}
}

func TestNewApp(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverBolt} {
		t.Run(driver, func(t *testing.T) {
			app, err := NewApp(testConfig(t, driver), models.AppBuildInfo{}, logger.Nop())
			require.NoError(t, err)
			require.NotNil(t, app.ui)
			require.NotNil(t, app.storages.Session)
			assert.NoError(t, app.storages.Close())
		})
	}
}

func TestNewApp_Errors(t *testing.T) {
	cfg := testConfig(t, "redis")
	_, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, store.ErrUnknownDriver)

	cfg = testConfig(t, config.DriverBolt)
	cfg.Adapter.HTTPAddress = ""
	_, err = NewApp(cfg, models.AppBuildInfo{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	app, err := NewApp(testConfig(t, config.DriverBolt), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ui := &stubUI{}
	app.ui = ui

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
}

func TestApp_Run_UIError(t *testing.T) {
	app, err := NewApp(testConfig(t, config.DriverBolt), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	boom := errors.New("no tty")
	app.ui = &stubUI{err: boom}

	assert.ErrorIs(t, app.Run(context.Background()), boom)
}
