// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds the response body kept on a RequestError.
const maxErrorBody = 512

// classifyStatus maps an HTTP status to a failure kind. ok is true for 2xx.
func classifyStatus(status int) (kind ErrorKind, ok bool) {
	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return 0, true
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindAuth, false
	case status == http.StatusBadGateway,
		status == http.StatusServiceUnavailable,
		status == http.StatusGatewayTimeout:
		return KindTransientServer, false
	default:
		return KindFatalHTTP, false
	}
}

func mapHTTPError(resp *resty.Response) *RequestError {
	kind, ok := classifyStatus(resp.StatusCode())
	if ok {
		return nil
	}

	return &RequestError{
		Kind:       kind,
		StatusCode: resp.StatusCode(),
		Body:       errorBody(resp.Body(), resp.StatusCode()),
	}
}

func mapTransportError(err error) *RequestError {
	return &RequestError{Kind: KindTransport, Err: err}
}

func errorBody(raw []byte, status int) string {
	body := strings.TrimSpace(string(raw))
	if body == "" {
		return http.StatusText(status)
	}
	if len(body) > maxErrorBody {
		return body[:maxErrorBody] + "..."
	}
	return body
}
