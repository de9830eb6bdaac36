// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-token-client/internal/adapter"
	"github.com/MKhiriev/go-token-client/internal/app"
	"github.com/MKhiriev/go-token-client/internal/service"
)

// describeError turns a request failure into the line shown to the user.
func describeError(cmd Command, err error) string {
	target := cmd.Method + " " + cmd.Path

	var exhausted *service.RetryExhaustedError
	if errors.As(err, &exhausted) {
		return fmt.Sprintf("Retries (%d) exhausted for request to %s: %s (%v)",
			exhausted.Attempts, target, kindMessage(exhausted.Last), exhausted.Last)
	}

	if IsCancelled(err) {
		return fmt.Sprintf("%s: %s", app.MsgCancelled, target)
	}

	if errors.Is(err, service.ErrInvalidDataProvided) {
		return fmt.Sprintf("%s: %v", app.MsgInvalidRequest, err)
	}

	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("%s: %s (%v)", kindMessage(reqErr), target, reqErr)
	}

	return fmt.Sprintf("%s: %s (%v)", app.MsgRequestFailed, target, err)
}

func kindMessage(e *adapter.RequestError) string {
	if e == nil {
		return app.MsgRequestFailed
	}

	switch e.Kind {
	case adapter.KindTokenFetch:
		return app.MsgTokenUnavailable
	case adapter.KindAuth:
		return app.MsgAuthRejected
	case adapter.KindTransientServer:
		return app.MsgServerUnavailable
	case adapter.KindTransport:
		return app.MsgServerUnreachable
	default:
		return app.MsgRequestFailed
	}
}
