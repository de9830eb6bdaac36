// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks outbound request descriptors before the client
// spends a token fetch or a retry budget on them.
package validators

import "context"

// Validator validates obj. When fields are given, only those are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
