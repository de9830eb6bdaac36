// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SEED_TOKEN": "invalid_token",
		"APP_LOG_FILE":   "/tmp/client.log",

		"AUTH_STATIC_TOKEN":   "abc123",
		"AUTH_TOKEN_SIGN_KEY": "jwt_secret",
		"AUTH_TOKEN_ISSUER":   "test_issuer",
		"AUTH_TOKEN_DURATION": "1h",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "15s",

		"ADAPTER_ADDRESS":         "http://remote:8100",
		"ADAPTER_REQUEST_TIMEOUT": "3s",
		"ADAPTER_TOKEN_PATH":      "/auth/token",

		"RETRY_MAX_RETRIES":   "5",
		"RETRY_BASE_DELAY":    "100ms",
		"RETRY_MAX_DELAY":     "1s",
		"RETRY_JITTER_FACTOR": "0.25",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "invalid_token", cfg.App.SeedToken)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)

	assert.Equal(t, "abc123", cfg.Auth.StaticToken)
	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://remote:8100", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/auth/token", cfg.Adapter.TokenPath)

	assert.Equal(t, 5, cfg.Retry.MaxRetries)
	assert.Equal(t, 100*time.Millisecond, cfg.Retry.BaseDelay)
	assert.Equal(t, time.Second, cfg.Retry.MaxDelay)
	assert.InDelta(t, 0.25, cfg.Retry.JitterFactor, 1e-9)
}

func TestParseEnv_EmptyEnvUsesDefaults(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Empty(t, cfg.JSONFilePath)
	assert.Empty(t, cfg.App.SeedToken)
	assert.Equal(t, "valid_token", cfg.Auth.StaticToken)
	assert.Equal(t, ":8100", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://localhost:8100", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Retry.BaseDelay)
}

// TestParseEnv_ZeroRetries verifies that retries can be disabled explicitly.
func TestParseEnv_ZeroRetries(t *testing.T) {
	setEnvVars(t, map[string]string{"RETRY_MAX_RETRIES": "0"})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, 0, cfg.Retry.MaxRetries)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"RETRY_BASE_DELAY": "not-a-duration"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "milliseconds", value: "250ms", expected: 250 * time.Millisecond},
		{name: "seconds", value: "2s", expected: 2 * time.Second},
		{name: "minutes", value: "1m", expected: time.Minute},
		{name: "composite", value: "1m30s", expected: 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.value})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_SEED_TOKEN",
		"APP_LOG_FILE",

		"AUTH_STATIC_TOKEN",
		"AUTH_TOKEN_SIGN_KEY",
		"AUTH_TOKEN_ISSUER",
		"AUTH_TOKEN_DURATION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_TOKEN_PATH",

		"RETRY_MAX_RETRIES",
		"RETRY_BASE_DELAY",
		"RETRY_MAX_DELAY",
		"RETRY_JITTER_FACTOR",
	}
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}
