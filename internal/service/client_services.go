// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-token-client/internal/adapter"
	"github.com/MKhiriev/go-token-client/internal/config"
	"github.com/MKhiriev/go-token-client/internal/logger"
)

// ClientServices groups the services used by the client commands.
type ClientServices struct {
	TokenCache    TokenCache
	ClientService ClientService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, logger *logger.Logger) *ClientServices {
	cache := NewTokenCache(serverAdapter, cfg.App.SeedToken, logger)
	clientSvc := NewClientService(serverAdapter, cache, NewRetryPolicy(cfg.Retry), logger)

	return &ClientServices{
		TokenCache:    cache,
		ClientService: NewClientServiceValidation().Wrap(clientSvc),
	}
}
