// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMethod   = errors.New("unsupported http method")
	ErrInvalidPath     = errors.New("invalid request path")
	ErrAbsolutePath    = errors.New("request path must be relative to the base address")
	ErrBodyNotEncoding = errors.New("request body is not JSON-encodable")
	ErrBodyNotAllowed  = errors.New("request body is not allowed for this method")
)
