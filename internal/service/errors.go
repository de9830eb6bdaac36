// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-token-client/internal/adapter"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrRetryExhausted = errors.New("retries exhausted")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// RetryExhaustedError is returned when every attempt of an authenticated
// request failed with a retryable error. It unwraps to the last failure.
type RetryExhaustedError struct {
	Attempts int
	Last     *adapter.RequestError
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("%s after %d attempts: %v", ErrRetryExhausted, e.Attempts, e.Last)
}

func (e *RetryExhaustedError) Unwrap() error {
	if e.Last == nil {
		return nil
	}
	return e.Last
}

func (e *RetryExhaustedError) Is(target error) bool {
	return target == ErrRetryExhausted
}
