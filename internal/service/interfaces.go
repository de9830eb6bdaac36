// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-token-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=ClientServiceWrapper

// TokenCache holds at most one bearer token for the process.
type TokenCache interface {
	// Token returns the cached token, fetching and caching a fresh one when
	// none is held. Concurrent callers that miss share a single fetch.
	// A failed fetch is returned as an adapter error of kind token_fetch.
	Token(ctx context.Context) (string, error)

	// Invalidate drops the cached token. It is idempotent.
	Invalidate()

	// Cached reports whether a token is currently held.
	Cached() bool
}

// ClientService is the public surface of the token client.
type ClientService interface {
	// PerformAuthenticatedRequest sends method+path with an optional JSON body,
	// authenticated with the cached token. Authentication failures invalidate
	// the token and are retried together with 502/503/504 responses, with
	// exponential backoff and jitter. It returns the raw response body.
	PerformAuthenticatedRequest(ctx context.Context, method, path string, body map[string]any) ([]byte, error)

	// Get sends one unauthenticated GET and returns the raw response body.
	Get(ctx context.Context, path string) ([]byte, error)

	// Post sends one unauthenticated POST with a JSON body.
	Post(ctx context.Context, path string, body map[string]any) ([]byte, error)

	// InvalidateToken drops the cached token.
	InvalidateToken()

	// TokenCached reports whether a token is currently cached.
	TokenCached() bool
}

// ClientServiceWrapper defines middleware composition for ClientService.
// Implementations wrap an existing ClientService to add behavior such as
// logging or validating.
type ClientServiceWrapper interface {
	Wrap(ClientService) ClientService // returns a decorated ClientService applying additional behavior
}

// AuthService issues and verifies the tokens handed out by the stub server.
type AuthService interface {
	CreateToken(ctx context.Context, clientID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build metadata of the running stub server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
