// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"net/http"
	"strings"
)

// RequestDescriptor describes a single logical call against the target API.
//
// A descriptor is immutable once built: [NewRequestDescriptor] copies the body
// map so later mutation by the caller cannot leak into an in-flight retry
// sequence. The base address is not part of the descriptor; it is injected
// once into the transport adapter at construction.
type RequestDescriptor struct {
	// Method is the upper-cased HTTP method (GET, POST, ...).
	Method string

	// Path is the request path relative to the base address, always with a
	// leading slash.
	Path string

	// Body is the optional JSON object sent with the request. A nil Body
	// means the request carries no payload and no Content-Type header.
	Body map[string]any
}

// NewRequestDescriptor normalises method and path and takes a shallow copy of
// body. An empty method defaults to GET, an empty path to "/".
func NewRequestDescriptor(method, path string, body map[string]any) RequestDescriptor {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = http.MethodGet
	}

	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var bodyCopy map[string]any
	if body != nil {
		bodyCopy = maps.Clone(body)
	}

	return RequestDescriptor{Method: method, Path: path, Body: bodyCopy}
}

// HasBody reports whether the descriptor carries a JSON payload.
func (d RequestDescriptor) HasBody() bool {
	return d.Body != nil
}

// String returns "METHOD /path", used in log fields and error messages.
func (d RequestDescriptor) String() string {
	return d.Method + " " + d.Path
}
