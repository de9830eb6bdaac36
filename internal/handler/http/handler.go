// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/service"
	"github.com/MKhiriev/go-token-client/internal/utils"
)

const clientIDPrefix = "cli-"

type Handler struct {
	services  *service.Services
	clientIDs *utils.IDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		clientIDs: utils.NewIDGenerator(clientIDPrefix),
		logger:    logger,
	}
}
