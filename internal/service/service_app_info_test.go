// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/models"
	"github.com/stretchr/testify/assert"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "injected", version: "v1.2.3", want: "v1.2.3"},
		{name: "missing", version: "", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAppInfoService(models.NewAppBuildInfo(tt.version, "", ""), logger.Nop())
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}
