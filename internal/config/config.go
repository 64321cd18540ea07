// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client presentation and diagnostics settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the durable session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote profile API addresses used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the stub profile server settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-side application settings.
type App struct {
	// DefaultAvatar is the image reference shown when the fetched profile
	// has no avatar.
	// Env: APP_DEFAULT_AVATAR
	DefaultAvatar string `env:"DEFAULT_AVATAR"`

	// LogFile is the file the client appends its JSON logs to.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the session store settings.
type Storage struct {
	// Driver selects the store backend: "sqlite" or "bolt".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the backend connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the file path of the local session database.
type DB struct {
	// DSN is the sqlite DSN or the bbolt file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the remote API addresses and timeouts.
type Adapter struct {
	// HTTPAddress is the base address of the profile API
	// (e.g. "http://localhost:8080/api/v1").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// UploadAddress is the base address that receives POST /avatar. Falls
	// back to HTTPAddress when empty.
	// Env: ADAPTER_UPLOAD_ADDRESS
	UploadAddress string `env:"UPLOAD_ADDRESS"`

	// RequestTimeout bounds a single outbound request. Zero disables the
	// timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds the stub profile server settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey signs and verifies the HS256 session tokens.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// NormalizeEmail makes the server lower-case and trim emails on update,
	// so the stored value can differ from the submitted one.
	// Env: SERVER_NORMALIZE_EMAIL
	NormalizeEmail bool `env:"NORMALIZE_EMAIL"`
}

// Built-in defaults applied before any other source.
const (
	DefaultAPIAddress     = "http://localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultStorageDriver  = DriverSQLite
	DefaultDSN            = "profile-client.db"
	DefaultAvatar         = "/path-to-default-avatar-image.png"

	DefaultServerAddress = "localhost:8080"
	DefaultTokenIssuer   = "profile-stub"
	DefaultTokenDuration = 24 * time.Hour
)

// Supported session store drivers.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{DefaultAvatar: DefaultAvatar},
		Storage: Storage{
			Driver: DefaultStorageDriver,
			DB:     DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:   DefaultServerAddress,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. args are the command-line arguments without the
// program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
