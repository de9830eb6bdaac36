// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used by the token client to
// talk to the remote service.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPServerAdapter]) that performs exactly one request per call and
// never retries on its own.
//
// Failures are reported as [*RequestError] values carrying an [ErrorKind].
// Callers match them with [errors.Is] against the sentinels in errors.go
// (e.g. [ErrAuth] for 401/403, [ErrTransientServer] for 502/503/504).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-token-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenFetcher obtains a fresh bearer token from the token endpoint.
type TokenFetcher interface {
	// FetchToken performs one GET against the token endpoint and returns the
	// whole response body, trimmed of surrounding whitespace, as the token.
	// Any failure is returned as a [*RequestError] of kind [KindTokenFetch].
	FetchToken(ctx context.Context) (string, error)
}

// RequestExecutor issues a single request against the target API.
type RequestExecutor interface {
	// Execute sends req once, decorated with "Authorization: Bearer <token>"
	// when token is non-empty, and classifies the result. It never consults
	// or mutates any token storage.
	Execute(ctx context.Context, req models.RequestDescriptor, token string) Outcome
}

// ServerAdapter combines token fetching and request execution against one
// remote service whose base address is fixed at construction.
type ServerAdapter interface {
	TokenFetcher
	RequestExecutor
}
