// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidRetryConfigs indicates an unusable retry policy
	// (for example, negative retries or a jitter factor outside [0, 1)).
	ErrInvalidRetryConfigs = errors.New("invalid retry configuration")
	// ErrInvalidServerConfigs indicates invalid stub server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates that the stub server has neither a
	// static token nor a usable signing setup.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
