// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-token-client/internal/client"

// commandDoneMsg carries the result of a command run in the background.
type commandDoneMsg struct {
	result client.Result
}
