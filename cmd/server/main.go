// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-token-client/internal/config"
	"github.com/MKhiriev/go-token-client/internal/handler"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/server"
	"github.com/MKhiriev/go-token-client/internal/service"
	"github.com/MKhiriev/go-token-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("go-token-stub")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("signed_tokens", cfg.Auth.TokenSignKey != "").
		Msg("received configs")

	services := service.NewServices(cfg.Auth, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
