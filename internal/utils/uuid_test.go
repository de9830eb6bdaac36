// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_Generate(t *testing.T) {
	g := NewIDGenerator("cli-")

	id := g.Generate()
	require.True(t, strings.HasPrefix(id, "cli-"))

	parsed, err := uuid.Parse(strings.TrimPrefix(id, "cli-"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestIDGenerator_Unique(t *testing.T) {
	g := NewIDGenerator("")

	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := g.Generate()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
