// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// token client and the stub server. It is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
//   - envDefault - value used when the variable is unset.
type StructuredConfig struct {
	// App holds process-level client settings.
	App App `envPrefix:"APP_"`

	// Auth holds the token issuing settings of the stub server.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds the listen address and timeout of the stub server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound transport settings of the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Retry holds the retry policy of authenticated requests.
	Retry Retry `envPrefix:"RETRY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// explicit records retry values a source set on purpose. mergo treats a
	// zero as unset, so build re-applies them after merging that source.
	explicit explicitValues
}

// explicitValues marks the retry fields whose zero value is meaningful:
// no retries and no jitter.
type explicitValues struct {
	maxRetries   bool
	jitterFactor bool
}

// apply copies the marked fields of src into dst.
func (e explicitValues) apply(dst, src *StructuredConfig) {
	if e.maxRetries {
		dst.Retry.MaxRetries = src.Retry.MaxRetries
	}
	if e.jitterFactor {
		dst.Retry.JitterFactor = src.Retry.JitterFactor
	}
}

// App holds client process settings.
type App struct {
	// SeedToken, when non-empty, is placed in the token cache at start-up
	// instead of leaving it absent. A known-bad seed forces the first
	// authenticated call through the 401 then refetch path.
	// Env: APP_SEED_TOKEN
	SeedToken string `env:"SEED_TOKEN"`

	// LogFile is the file the client appends its JSON log to. Empty means
	// "logs" next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Auth holds the settings the stub server uses to issue and verify tokens.
type Auth struct {
	// StaticToken is returned by GET /token when TokenSignKey is empty.
	// Env: AUTH_STATIC_TOKEN
	StaticToken string `env:"STATIC_TOKEN" envDefault:"valid_token"`

	// TokenSignKey switches the stub server to signed HS256 tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of signed tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"go-token-stub"`

	// TokenDuration is the lifetime of signed tokens.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"1m"`
}

// Server holds network and timeout settings for the stub server.
type Server struct {
	// HTTPAddress is the TCP address the stub server listens on,
	// in "host:port" format (e.g. ":8100").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":8100"`

	// RequestTimeout bounds reading and writing a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Adapter holds the outbound transport settings of the client.
type Adapter struct {
	// HTTPAddress is the base address of the remote service, injected once
	// into the transport adapter (e.g. "http://localhost:8100").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"http://localhost:8100"`

	// RequestTimeout is the transport timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	// TokenPath is the path of the token endpoint on the base address.
	// Env: ADAPTER_TOKEN_PATH
	TokenPath string `env:"TOKEN_PATH" envDefault:"/token"`
}

// Retry holds the backoff policy of authenticated requests.
type Retry struct {
	// MaxRetries is the number of retries after the first attempt.
	// Env: RETRY_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES" envDefault:"3"`

	// BaseDelay is the delay before the first retry; it doubles per retry.
	// Env: RETRY_BASE_DELAY
	BaseDelay time.Duration `env:"BASE_DELAY" envDefault:"2s"`

	// MaxDelay caps the pre-jitter delay.
	// Env: RETRY_MAX_DELAY
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"30s"`

	// JitterFactor is the multiplicative jitter j: every delay is scaled by
	// a factor drawn uniformly from [1-j, 1+j].
	// Env: RETRY_JITTER_FACTOR
	JitterFactor float64 `env:"JITTER_FACTOR" envDefault:"0.5"`
}
