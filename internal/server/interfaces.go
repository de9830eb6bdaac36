// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the stub server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT and then
	// shuts down gracefully.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
