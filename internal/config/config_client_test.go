// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_UploadFallsBackToAPI(t *testing.T) {
	cfg, err := newClientConfig(defaults())
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAPIAddress, cfg.Adapter.UploadAddress)
}

func TestNewClientConfig_KeepsSeparateUploadAddress(t *testing.T) {
	base := defaults()
	base.Adapter.UploadAddress = "http://uploads.local"

	cfg, err := newClientConfig(base)
	require.NoError(t, err)

	assert.Equal(t, "http://uploads.local", cfg.Adapter.UploadAddress)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			Adapter: ClientAdapter{HTTPAddress: "http://api", UploadAddress: "http://api"},
			Storage: ClientStorage{Driver: DriverSQLite, DB: ClientDB{DSN: "client.db"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "bolt driver", mutate: func(c *ClientConfig) { c.Storage.Driver = DriverBolt }},
		{name: "unknown driver", mutate: func(c *ClientConfig) { c.Storage.Driver = "redis" }, want: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "empty api", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "negative timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = -1 }, want: ErrInvalidAdapterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetStubServerConfig_RequiresSignKey(t *testing.T) {
	_, err := GetStubServerConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)

	cfg, err := GetStubServerConfig([]string{"-token-sign-key", "secret"})
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.TokenSignKey)
	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.TokenIssuer)
}
