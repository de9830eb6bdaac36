// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// IDGenerator produces time-ordered identifiers for trace ids and for the
// subject of issued tokens.
type IDGenerator struct {
	prefix string
}

// NewIDGenerator returns a generator whose ids start with prefix.
func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix}
}

// Generate returns a new UUIDv7, falling back to a random UUIDv4.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return g.prefix + uuid.NewString()
	}

	return g.prefix + v7.String()
}
