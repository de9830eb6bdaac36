// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-token-client/internal/adapter"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/models"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
)

// Values of the "state" log field, one per retry decision.
const (
	stateAttempting = "attempting"
	stateBackingOff = "backing_off"
	stateSucceeded  = "succeeded"
	stateExhausted  = "exhausted"
	stateFatal      = "fatal"
)

// RetryController runs one logical authenticated call as a strictly
// sequential series of attempts.
//
// Auth failures (401/403) invalidate the cached token before the next attempt.
// Auth and transient server failures (502/503/504) are retried until
// policy.Attempts() is reached. Token fetch failures, other HTTP errors and
// transport errors end the call immediately.
type RetryController struct {
	cache    TokenCache
	executor adapter.RequestExecutor
	policy   RetryPolicy

	// newBackoff is replaced in tests to observe or shorten delays.
	newBackoff func() retry.Backoff

	logger *logger.Logger
}

func NewRetryController(cache TokenCache, executor adapter.RequestExecutor, policy RetryPolicy, logger *logger.Logger) *RetryController {
	return &RetryController{
		cache:      cache,
		executor:   executor,
		policy:     policy,
		newBackoff: policy.newBackoff,
		logger:     logger,
	}
}

// Do performs req and returns the body of the first successful response.
//
// Failures are returned as:
//   - *RetryExhaustedError when every attempt failed with a retryable error;
//   - *adapter.RequestError for a fatal failure (token fetch, fatal HTTP,
//     transport);
//   - ctx.Err() (wrapped) when ctx ended while backing off.
func (c *RetryController) Do(ctx context.Context, req models.RequestDescriptor) ([]byte, error) {
	maxAttempts := c.policy.Attempts()
	log := c.logger.With().Str("request", req.String()).Int("max_attempts", maxAttempts).Logger()

	var attempt int
	backoff := c.observe(c.newBackoff(), &attempt, &log)

	body, err := retry.DoValue(ctx, backoff, func(ctx context.Context) ([]byte, error) {
		attempt++
		log.Debug().Str("state", stateAttempting).Int("attempt", attempt).Msg("sending request")

		token, err := c.cache.Token(ctx)
		if err != nil {
			log.Err(err).Str("state", stateFatal).Int("attempt", attempt).Msg("token unavailable")
			return nil, err
		}

		out := c.executor.Execute(ctx, req, token)
		if out.Succeeded() {
			log.Info().Str("state", stateSucceeded).Int("attempt", attempt).Int("status", out.StatusCode).Msg("request succeeded")
			return out.Body, nil
		}

		f := out.Failure
		switch f.Kind {
		case adapter.KindAuth, adapter.KindTransientServer:
			if attempt >= maxAttempts {
				log.Error().
					Str("state", stateExhausted).
					Int("attempt", attempt).
					Str("kind", f.Kind.String()).
					Int("status", f.StatusCode).
					Msg("retries exhausted")
				return nil, &RetryExhaustedError{Attempts: attempt, Last: f}
			}
			if f.Kind == adapter.KindAuth {
				c.cache.Invalidate()
			}
			log.Warn().
				Int("attempt", attempt).
				Str("kind", f.Kind.String()).
				Int("status", f.StatusCode).
				Msg("retryable failure")
			return nil, retry.RetryableError(f)
		case adapter.KindFatalHTTP, adapter.KindTransport, adapter.KindTokenFetch:
			log.Error().
				Str("state", stateFatal).
				Int("attempt", attempt).
				Str("kind", f.Kind.String()).
				Int("status", f.StatusCode).
				AnErr("cause", f.Err).
				Msg("request failed")
			return nil, f
		default:
			return nil, fmt.Errorf("unclassified failure: %w", f)
		}
	})
	if err == nil {
		return body, nil
	}

	var exhausted *RetryExhaustedError
	if errors.As(err, &exhausted) {
		return nil, err
	}

	// The backoff stopped before the attempt budget was spent.
	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) && reqErr.Kind.Retryable() {
		return nil, &RetryExhaustedError{Attempts: attempt, Last: reqErr}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		if !errors.As(err, &reqErr) {
			log.Warn().Err(err).Int("attempt", attempt).Msg("cancelled while backing off")
			return nil, fmt.Errorf("%s cancelled after %d attempts: %w", req, attempt, err)
		}
	}

	return nil, err
}

// observe logs every delay the backoff hands out.
func (c *RetryController) observe(b retry.Backoff, attempt *int, log *zerolog.Logger) retry.Backoff {
	return retry.BackoffFunc(func() (time.Duration, bool) {
		delay, stop := b.Next()
		if !stop {
			log.Info().
				Str("state", stateBackingOff).
				Int("attempt", *attempt).
				Dur("delay", delay).
				Msg("backing off")
		}
		return delay, stop
	})
}
