// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed request.
type ErrorKind int

const (
	// KindTokenFetch means the token endpoint could not supply a token.
	KindTokenFetch ErrorKind = iota + 1
	// KindAuth means the target rejected the token (401 or 403).
	KindAuth
	// KindTransientServer means the target answered 502, 503 or 504.
	KindTransientServer
	// KindFatalHTTP means any other non-2xx status.
	KindFatalHTTP
	// KindTransport means no HTTP status was received at all.
	KindTransport
)

// Sentinels matched by [*RequestError] through errors.Is.
var (
	ErrTokenFetch      = errors.New("token fetch failed")
	ErrAuth            = errors.New("authentication rejected")
	ErrTransientServer = errors.New("transient server error")
	ErrFatalHTTP       = errors.New("fatal http error")
	ErrTransport       = errors.New("transport error")
)

func (k ErrorKind) String() string {
	switch k {
	case KindTokenFetch:
		return "token_fetch"
	case KindAuth:
		return "auth"
	case KindTransientServer:
		return "transient_server"
	case KindFatalHTTP:
		return "fatal_http"
	case KindTransport:
		return "transport"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Retryable reports whether a request failing with this kind may succeed if
// it is sent again.
func (k ErrorKind) Retryable() bool {
	return k == KindAuth || k == KindTransientServer
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTokenFetch:
		return ErrTokenFetch
	case KindAuth:
		return ErrAuth
	case KindTransientServer:
		return ErrTransientServer
	case KindFatalHTTP:
		return ErrFatalHTTP
	case KindTransport:
		return ErrTransport
	default:
		return nil
	}
}

// RequestError describes a single failed request.
type RequestError struct {
	Kind ErrorKind
	// StatusCode is zero when no response was received.
	StatusCode int
	// Body is the trimmed response body, if any.
	Body string
	// Err is the underlying transport error, if any.
	Err error
}

func (e *RequestError) Error() string {
	msg := e.Kind.sentinel()
	if msg == nil {
		msg = errors.New("request failed")
	}

	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s: http %d: %s", msg, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: http %d", msg, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	default:
		return msg.Error()
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *RequestError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}
