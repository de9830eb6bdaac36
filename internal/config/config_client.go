// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SeedToken is the token placed in the cache at start-up, if any.
	SeedToken string
	// LogFile is the file the client appends its log to.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the remote service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// TokenPath is the path of the token endpoint.
	TokenPath string
}

// ClientRetry holds the backoff policy of authenticated requests.
type ClientRetry struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration
	// MaxDelay caps the pre-jitter delay.
	MaxDelay time.Duration
	// JitterFactor is the multiplicative jitter applied to every delay.
	JitterFactor float64
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeouts.
	Adapter ClientAdapter
	// Retry contains the retry policy.
	Retry ClientRetry
}

// GetClientConfig builds and validates a client-specific config view from
// environment variables, the given command-line args, and an optional JSON
// file. It returns the positional arguments left after the flags, which the
// client treats as a one-shot command.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(parseClientFlags, args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			SeedToken: cfg.App.SeedToken,
			LogFile:   cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			TokenPath:      cfg.Adapter.TokenPath,
		},
		Retry: ClientRetry{
			MaxRetries:   cfg.Retry.MaxRetries,
			BaseDelay:    cfg.Retry.BaseDelay,
			MaxDelay:     cfg.Retry.MaxDelay,
			JitterFactor: cfg.Retry.JitterFactor,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, nil, err
	}

	return clientCfg, b.rest, nil
}
