// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-token-client/internal/adapter"
	"github.com/MKhiriev/go-token-client/internal/client"
	"github.com/MKhiriev/go-token-client/internal/config"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/service"
	"github.com/MKhiriev/go-token-client/internal/tui"
	"github.com/MKhiriev/go-token-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprint(os.Stderr, buildInfo.String())

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("go-token-client", cfg.App.LogFile)
	log.Debug().
		Str("address", cfg.Adapter.HTTPAddress).
		Str("token_path", cfg.Adapter.TokenPath).
		Any("retry", cfg.Retry).
		Bool("seeded", cfg.App.SeedToken != "").
		Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, *cfg, log)
	runner := client.NewRunner(services.ClientService, log)
	app := client.NewApp(runner, tui.New(runner, buildInfo, log), os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, args); err != nil {
		log.Err(err).Strs("args", args).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
