// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/MKhiriev/go-token-client/models"
)

// Field name constants used to restrict validation of a request descriptor.
const (
	FieldMethod = "method"
	FieldPath   = "path"
	FieldBody   = "body"
)

var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// RequestValidator checks a [models.RequestDescriptor] before it is sent.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RequestDescriptor:
		return v.validateRequest(ctx, value, fields...)
	case *models.RequestDescriptor:
		return v.validateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRequest(_ context.Context, d models.RequestDescriptor, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMethod, FieldPath, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldMethod:
			if !slices.Contains(allowedMethods, d.Method) {
				return fmt.Errorf("%w: %q", ErrInvalidMethod, d.Method)
			}
		case FieldPath:
			if !strings.HasPrefix(d.Path, "/") || strings.ContainsAny(d.Path, " \t\r\n") {
				return fmt.Errorf("%w: %q", ErrInvalidPath, d.Path)
			}
			// "//host/x" would be resolved against the scheme only.
			if strings.HasPrefix(d.Path, "//") || strings.Contains(d.Path, "://") {
				return fmt.Errorf("%w: %q", ErrAbsolutePath, d.Path)
			}
		case FieldBody:
			if !d.HasBody() {
				continue
			}
			if d.Method == http.MethodDelete {
				return ErrBodyNotAllowed
			}
			if _, err := json.Marshal(d.Body); err != nil {
				return fmt.Errorf("%w: %w", ErrBodyNotEncoding, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
