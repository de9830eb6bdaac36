// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidBody    = errors.New("body must be a JSON object")
	ErrNothingToCopy  = errors.New("no response to copy yet")
)
