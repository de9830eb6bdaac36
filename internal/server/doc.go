// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the stub HTTP server until a stop signal arrives and
// then shuts it down gracefully.
package server
