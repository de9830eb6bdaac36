// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-token-client/internal/adapter"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/models"
)

// clientService wires the token cache, the retry controller and the raw
// executor behind the ClientService surface.
type clientService struct {
	executor adapter.RequestExecutor
	cache    TokenCache
	retry    *RetryController

	logger *logger.Logger
}

// NewClientService builds a ClientService that authenticates through cache
// and sends requests through executor.
func NewClientService(executor adapter.RequestExecutor, cache TokenCache, policy RetryPolicy, logger *logger.Logger) ClientService {
	return &clientService{
		executor: executor,
		cache:    cache,
		retry:    NewRetryController(cache, executor, policy, logger),
		logger:   logger,
	}
}

func (s *clientService) PerformAuthenticatedRequest(ctx context.Context, method, path string, body map[string]any) ([]byte, error) {
	return s.retry.Do(ctx, models.NewRequestDescriptor(method, path, body))
}

func (s *clientService) Get(ctx context.Context, path string) ([]byte, error) {
	return s.once(ctx, models.NewRequestDescriptor(http.MethodGet, path, nil))
}

func (s *clientService) Post(ctx context.Context, path string, body map[string]any) ([]byte, error) {
	return s.once(ctx, models.NewRequestDescriptor(http.MethodPost, path, body))
}

// once sends d a single time without a token.
func (s *clientService) once(ctx context.Context, d models.RequestDescriptor) ([]byte, error) {
	out := s.executor.Execute(ctx, d, "")
	if !out.Succeeded() {
		s.logger.Err(out.Failure).Str("request", d.String()).Msg("unauthenticated request failed")
		return nil, out.Failure
	}

	return out.Body, nil
}

func (s *clientService) InvalidateToken() {
	s.cache.Invalidate()
}

func (s *clientService) TokenCached() bool {
	return s.cache.Cached()
}
