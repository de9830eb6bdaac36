// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"
	"time"

	"github.com/MKhiriev/go-token-client/internal/config"
	"github.com/sethvargo/go-retry"
)

// Defaults used when a RetryPolicy field is left at zero.
const (
	DefaultMaxRetries   = 3
	DefaultBaseDelay    = 2 * time.Second
	DefaultMaxDelay     = 30 * time.Second
	DefaultJitterFactor = 0.5
)

// RetryPolicy describes the backoff schedule of one authenticated call.
//
// The delay before retry n (n starting at 1) is
// min(BaseDelay * 2^(n-1), MaxDelay) scaled by a factor drawn uniformly from
// [1-JitterFactor, 1+JitterFactor].
type RetryPolicy struct {
	MaxRetries   int
	BaseDelay    time.Duration
	MaxDelay     time.Duration
	JitterFactor float64
}

// DefaultRetryPolicy returns 4 total attempts, 2s base, 30s cap and ±50% jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   DefaultMaxRetries,
		BaseDelay:    DefaultBaseDelay,
		MaxDelay:     DefaultMaxDelay,
		JitterFactor: DefaultJitterFactor,
	}
}

// NewRetryPolicy builds a policy from the client retry config. Zero delays
// fall back to the defaults; MaxDelay is raised to BaseDelay if below it.
func NewRetryPolicy(cfg config.ClientRetry) RetryPolicy {
	p := RetryPolicy{
		MaxRetries:   max(cfg.MaxRetries, 0),
		BaseDelay:    cfg.BaseDelay,
		MaxDelay:     cfg.MaxDelay,
		JitterFactor: cfg.JitterFactor,
	}

	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = DefaultMaxDelay
	}
	p.MaxDelay = max(p.MaxDelay, p.BaseDelay)
	p.JitterFactor = min(max(p.JitterFactor, 0), 0.99)

	return p
}

// Attempts is the total number of attempts, the first one included.
func (p RetryPolicy) Attempts() int {
	return p.MaxRetries + 1
}

// preJitter is the capped exponential schedule without jitter.
func (p RetryPolicy) preJitter() retry.Backoff {
	b := retry.NewExponential(p.BaseDelay)
	return retry.WithCappedDuration(p.MaxDelay, b)
}

// newBackoff is the schedule used between attempts: capped exponential,
// jittered, stopping after MaxRetries delays.
func (p RetryPolicy) newBackoff() retry.Backoff {
	b := p.preJitter()
	if pct := uint64(math.Round(p.JitterFactor * 100)); pct > 0 {
		b = retry.WithJitterPercent(pct, b)
	}
	return retry.WithMaxRetries(uint64(p.MaxRetries), b)
}
