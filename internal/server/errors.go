// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler   = errors.New("stub server has no http handler")
	errNoListenAddress = errors.New("stub server has no listen address")
)
