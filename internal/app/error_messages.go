// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the human-readable messages shared by the stub server
// and the client commands.
//
// The server writes the Msg* strings into response bodies. The client prints
// them when a request fails, so both sides word an outcome the same way.
package app

const (
	// MsgNotAuthorized is the body of every 401 written by the stub server.
	MsgNotAuthorized = "Not Authorized!"

	// MsgInvalidJSON is returned when a request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgTokenUnavailable is shown when the token endpoint could not supply
	// a token.
	MsgTokenUnavailable = "could not obtain a token"

	// MsgAuthRejected is shown when the target keeps rejecting the token.
	MsgAuthRejected = "the server rejected the token"

	// MsgServerUnavailable is shown for 502, 503 and 504 responses.
	MsgServerUnavailable = "the server is temporarily unavailable"

	// MsgRequestFailed is shown for any other non-2xx response.
	MsgRequestFailed = "the request failed"

	// MsgServerUnreachable is shown when no response was received at all.
	MsgServerUnreachable = "the server could not be reached"

	// MsgInvalidRequest is shown when a command names a malformed request.
	MsgInvalidRequest = "invalid request"

	// MsgCancelled is shown when a request was abandoned while waiting.
	MsgCancelled = "the request was cancelled"
)
