// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-token-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()
	d := models.NewRequestDescriptor("POST", "/authenticated", map[string]any{"company": "Lab900"})

	assert.NoError(t, v.Validate(ctx, d))
	assert.NoError(t, v.Validate(ctx, &d))
	assert.ErrorIs(t, v.Validate(ctx, "not a request"), ErrUnsupportedType)
}

func TestValidate_Request(t *testing.T) {
	tests := []struct {
		name    string
		d       models.RequestDescriptor
		wantErr error
	}{
		{
			name: "get without body",
			d:    models.NewRequestDescriptor("GET", "/hello", nil),
		},
		{
			name: "post with body",
			d:    models.NewRequestDescriptor("POST", "/authenticated", map[string]any{"age": 30}),
		},
		{
			name:    "unknown method",
			d:       models.RequestDescriptor{Method: "BREW", Path: "/"},
			wantErr: ErrInvalidMethod,
		},
		{
			name:    "relative path without slash",
			d:       models.RequestDescriptor{Method: "GET", Path: "hello"},
			wantErr: ErrInvalidPath,
		},
		{
			name:    "path with whitespace",
			d:       models.RequestDescriptor{Method: "GET", Path: "/a b"},
			wantErr: ErrInvalidPath,
		},
		{
			name:    "scheme relative path",
			d:       models.NewRequestDescriptor("GET", "//evil.example/x", nil),
			wantErr: ErrAbsolutePath,
		},
		{
			name:    "embedded url",
			d:       models.NewRequestDescriptor("GET", "/http://evil.example", nil),
			wantErr: ErrAbsolutePath,
		},
		{
			name:    "delete with body",
			d:       models.NewRequestDescriptor("DELETE", "/x", map[string]any{"a": 1}),
			wantErr: ErrBodyNotAllowed,
		},
		{
			name:    "body not encodable",
			d:       models.NewRequestDescriptor("POST", "/x", map[string]any{"ch": make(chan int)}),
			wantErr: ErrBodyNotEncoding,
		},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.d)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewRequestValidator()
	d := models.RequestDescriptor{Method: "BREW", Path: "/ok"}

	assert.NoError(t, v.Validate(context.Background(), d, FieldPath))
	assert.ErrorIs(t, v.Validate(context.Background(), d, FieldMethod), ErrInvalidMethod)
	assert.ErrorIs(t, v.Validate(context.Background(), d, "nope"), ErrUnknownField)
}
