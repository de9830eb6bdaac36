// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-token-client/internal/config"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/utils"
	"github.com/MKhiriev/go-token-client/models"
)

type httpServerAdapter struct {
	client    *utils.HTTPClient
	tokenPath string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. The base URL is fixed for the lifetime of the adapter.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	tokenPath := adapterCfg.TokenPath
	if tokenPath == "" {
		tokenPath = "/token"
	}
	if !strings.HasPrefix(tokenPath, "/") {
		tokenPath = "/" + tokenPath
	}

	return &httpServerAdapter{
		client:    utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokenPath: tokenPath,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchToken implements [TokenFetcher]. It GETs the token endpoint and returns
// the whitespace-trimmed body. A transport failure, a non-2xx status or an
// empty body are all reported as [KindTokenFetch].
func (h *httpServerAdapter) FetchToken(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(h.tokenPath)
	if err != nil {
		return "", &RequestError{Kind: KindTokenFetch, Err: err}
	}

	if mapped := mapHTTPError(resp); mapped != nil {
		mapped.Kind = KindTokenFetch
		return "", mapped
	}

	token := strings.TrimSpace(resp.String())
	if token == "" {
		return "", &RequestError{
			Kind:       KindTokenFetch,
			StatusCode: resp.StatusCode(),
			Err:        errors.New("empty token in response"),
		}
	}

	h.logger.Debug().
		Str("path", h.tokenPath).
		Int("status", resp.StatusCode()).
		Msg("token fetched")

	return token, nil
}

// Execute implements [RequestExecutor]. A non-empty body is sent as JSON.
// The token is attached as a bearer credential when non-empty.
func (h *httpServerAdapter) Execute(ctx context.Context, d models.RequestDescriptor, token string) Outcome {
	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if d.HasBody() {
		req.SetHeader("Content-Type", "application/json").
			SetBody(d.Body)
	}

	resp, err := req.Execute(d.Method, d.Path)
	if err != nil {
		h.logger.Debug().Err(err).Str("request", d.String()).Msg("transport failure")
		return failure(mapTransportError(err))
	}

	h.logger.Debug().
		Str("request", d.String()).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("request executed")

	if mapped := mapHTTPError(resp); mapped != nil {
		return failure(mapped)
	}

	return success(resp.StatusCode(), resp.Body())
}
