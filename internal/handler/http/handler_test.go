// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-token-client/internal/config"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/service"
	"github.com/MKhiriev/go-token-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectNopLogger puts a nop logger into the request context the way
// withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// newStaticHandler returns a Handler over real services in static token mode.
func newStaticHandler(t *testing.T) *Handler {
	t.Helper()
	svcs := service.NewServices(
		config.ServerAuth{StaticToken: "valid_token"},
		models.NewAppBuildInfo("v0.1.0", "", ""),
		logger.Nop(),
	)
	return NewHandler(svcs, logger.Nop())
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, log)

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	require.NotNil(t, h.clientIDs)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

func TestHandler_RecoversFromPanics(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	router := h.Init()

	// AppInfoService is nil, so /version panics inside the handler.
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
