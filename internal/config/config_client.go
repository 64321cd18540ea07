// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// DefaultAvatar is shown when the profile has no avatar.
	DefaultAvatar string
	// LogFile receives the client's JSON logs.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the profile API base address.
	HTTPAddress string
	// UploadAddress is the avatar upload base address.
	UploadAddress string
	// RequestTimeout is the timeout for outbound requests; zero disables it.
	RequestTimeout time.Duration
}

// ClientDB contains local session database settings.
type ClientDB struct {
	// DSN is the sqlite DSN or bbolt file path.
	DSN string
}

// ClientStorage groups session store settings.
type ClientStorage struct {
	// Driver is "sqlite" or "bolt".
	Driver string
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// StubServerConfig is the stub server view of [StructuredConfig].
type StubServerConfig struct {
	HTTPAddress    string
	TokenSignKey   string
	TokenIssuer    string
	TokenDuration  time.Duration
	NormalizeEmail bool
}

// GetClientConfig builds and validates the client view of the merged
// configuration. An empty upload address falls back to the API address.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	uploadAddress := cfg.Adapter.UploadAddress
	if uploadAddress == "" {
		uploadAddress = cfg.Adapter.HTTPAddress
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DefaultAvatar: cfg.App.DefaultAvatar,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			UploadAddress:  uploadAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			DB:     ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	return clientCfg, clientCfg.validate()
}

// GetStubServerConfig builds and validates the stub server view of the
// merged configuration.
func GetStubServerConfig(args []string) (*StubServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &StubServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenIssuer:    cfg.Server.TokenIssuer,
		TokenDuration:  cfg.Server.TokenDuration,
		NormalizeEmail: cfg.Server.NormalizeEmail,
	}

	return serverCfg, serverCfg.validate()
}
