// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerHTTP holds the listen settings of the stub server.
type ServerHTTP struct {
	// HTTPAddress is the address the server listens on.
	HTTPAddress string
	// RequestTimeout bounds reading and writing a single request.
	RequestTimeout time.Duration
}

// ServerAuth holds the token issuing settings of the stub server.
type ServerAuth struct {
	StaticToken   string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerConfig is the stub server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Server ServerHTTP
	Auth   ServerAuth
}

// GetServerConfig builds and validates the stub server config from
// environment variables, the given command-line args, and an optional JSON
// file.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(parseServerFlags, args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Auth: ServerAuth{
			StaticToken:   cfg.Auth.StaticToken,
			TokenSignKey:  cfg.Auth.TokenSignKey,
			TokenIssuer:   cfg.Auth.TokenIssuer,
			TokenDuration: cfg.Auth.TokenDuration,
		},
	}

	return serverCfg, serverCfg.validate()
}
