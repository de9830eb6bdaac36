// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the client configuration is usable before the
// transport and the retry controller are built from it.
func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: base address %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.TokenPath == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Retry.MaxRetries < 0 || cfg.Retry.BaseDelay <= 0 || cfg.Retry.MaxDelay < cfg.Retry.BaseDelay {
		return ErrInvalidRetryConfigs
	}

	if cfg.Retry.JitterFactor < 0 || cfg.Retry.JitterFactor >= 1 {
		return fmt.Errorf("%w: jitter factor %v out of [0, 1)", ErrInvalidRetryConfigs, cfg.Retry.JitterFactor)
	}

	return nil
}

// validate checks that the stub server can listen and issue tokens.
func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" {
		if cfg.Auth.StaticToken == "" {
			return ErrInvalidAuthConfigs
		}
		return nil
	}

	if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
