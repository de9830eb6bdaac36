// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-token-client/internal/validators"
	"github.com/MKhiriev/go-token-client/models"
)

// ClientServiceValidation rejects malformed requests before they reach the
// retry controller, so a bad path never costs a token fetch.
type ClientServiceValidation struct {
	inner     ClientService
	validator validators.Validator
}

func NewClientServiceValidation() ClientServiceWrapper {
	return &ClientServiceValidation{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ClientServiceValidation) PerformAuthenticatedRequest(ctx context.Context, method, path string, body map[string]any) ([]byte, error) {
	d, err := v.validate(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	return v.inner.PerformAuthenticatedRequest(ctx, d.Method, d.Path, d.Body)
}

func (v *ClientServiceValidation) Get(ctx context.Context, path string) ([]byte, error) {
	d, err := v.validate(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	return v.inner.Get(ctx, d.Path)
}

func (v *ClientServiceValidation) Post(ctx context.Context, path string, body map[string]any) ([]byte, error) {
	d, err := v.validate(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	return v.inner.Post(ctx, d.Path, d.Body)
}

func (v *ClientServiceValidation) InvalidateToken() {
	v.inner.InvalidateToken()
}

func (v *ClientServiceValidation) TokenCached() bool {
	return v.inner.TokenCached()
}

func (v *ClientServiceValidation) Wrap(inner ClientService) ClientService {
	v.inner = inner
	return v
}

// validate checks the path exactly as given, so a relative or padded path is
// rejected instead of being silently rewritten. The method is case-insensitive.
// The returned descriptor is what gets forwarded.
func (v *ClientServiceValidation) validate(ctx context.Context, method, path string, body map[string]any) (models.RequestDescriptor, error) {
	raw := models.RequestDescriptor{
		Method: strings.ToUpper(strings.TrimSpace(method)),
		Path:   path,
		Body:   body,
	}
	if err := v.validator.Validate(ctx, raw); err != nil {
		return models.RequestDescriptor{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return models.NewRequestDescriptor(raw.Method, raw.Path, raw.Body), nil
}
