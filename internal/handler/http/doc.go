// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the stub server the token client is exercised
// against.
//
// It hands out tokens on GET /token, guards POST /authenticated with a
// bearer token check, and echoes every other GET or POST back as JSON.
// Tracing, access logging and panic recovery are applied to every route.
package http
