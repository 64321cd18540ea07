// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-api              profile API base address
//	-upload           avatar upload base address
//	-timeout          request timeout (e.g. "15s")
//	-storage          session store driver: sqlite | bolt
//	-d                session store DSN / file path
//	-avatar           default avatar reference
//	-log              client log file
//	-a                stub server listen address in format [host]:[port]
//	-token-sign-key   stub server token signing key
//	-token-issuer     stub server token issuer
//	-token-duration   stub server token lifetime (e.g. "24h")
//	-normalize-email  stub server lower-cases emails on update
//	-c/-config        json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("profile-client", flag.ContinueOnError)

	var serverAddress NetAddress
	var apiAddress, uploadAddress string
	var requestTimeout time.Duration
	var driver, dsn string
	var defaultAvatar, logFile string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var normalizeEmail bool
	var jsonConfigPath string

	fs.StringVar(&apiAddress, "api", "", "Profile API base address")
	fs.StringVar(&uploadAddress, "upload", "", "Avatar upload base address")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&driver, "storage", "", "Session store driver: sqlite | bolt")
	fs.StringVar(&dsn, "d", "", "Session store DSN")
	fs.StringVar(&defaultAvatar, "avatar", "", "Default avatar reference")
	fs.StringVar(&logFile, "log", "", "Client log file")
	fs.Var(&serverAddress, "a", "Stub server net address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Stub server token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Stub server token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Stub server token duration (e.g., 24h)")
	fs.BoolVar(&normalizeEmail, "normalize-email", false, "Stub server normalizes emails on update")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DefaultAvatar: defaultAvatar,
			LogFile:       logFile,
		},
		Storage: Storage{
			Driver: driver,
			DB:     DB{DSN: dsn},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			UploadAddress:  uploadAddress,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			NormalizeEmail: normalizeEmail,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
