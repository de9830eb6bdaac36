// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the commands of the token client.
//
// A [Runner] parses and executes command lines such as "post-token" or
// "get /status" against a [service.ClientService]. The same runner backs the
// one-shot CLI mode and the interactive shell.
package client
