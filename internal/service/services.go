// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-token-client/internal/config"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/models"
)

// Services groups the services used by the stub server handlers.
type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(cfg config.ServerAuth, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(cfg, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
