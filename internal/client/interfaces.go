// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes args as a single command, or starts the interactive
	// shell when args is empty, and blocks until exit.
	Run(ctx context.Context, args []string) error
}

// Shell is an interactive front end driving a [Runner].
type Shell interface {
	Run(ctx context.Context) error
}
