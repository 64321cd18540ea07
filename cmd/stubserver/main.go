// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-profile-client/internal/config"
	"github.com/MKhiriev/go-profile-client/internal/handler"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/server"
	"github.com/MKhiriev/go-profile-client/internal/stubserver"
	"github.com/MKhiriev/go-profile-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// demo account available right after start
const (
	demoUsername = "alice"
	demoPassword = "pw"
	demoEmail    = "a@x.com"
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("profile-stub-server")
	cfg, err := config.GetStubServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("issuer", cfg.TokenIssuer).
		Dur("token_duration", cfg.TokenDuration).
		Bool("normalize_email", cfg.NormalizeEmail).
		Msg("received configs")

	profiles := stubserver.NewService(*cfg)
	if err = profiles.AddUser(demoUsername, demoPassword, demoEmail); err != nil {
		log.Fatal().Err(err).Msg("error seeding demo user")
	}
	log.Info().Str("username", demoUsername).Msg("demo user created")

	handlers, err := handler.NewHandlers(profiles, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
