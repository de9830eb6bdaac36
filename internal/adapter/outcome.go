// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// Outcome is the result of one executed request: a success carrying the
// status and raw body, or a classified failure.
type Outcome struct {
	StatusCode int
	Body       []byte
	Failure    *RequestError
}

func success(status int, body []byte) Outcome {
	return Outcome{StatusCode: status, Body: body}
}

func failure(err *RequestError) Outcome {
	return Outcome{StatusCode: err.StatusCode, Failure: err}
}

// Succeeded reports whether the request completed with a 2xx status.
func (o Outcome) Succeeded() bool {
	return o.Failure == nil
}

// Err returns the failure as an error, or nil on success.
func (o Outcome) Err() error {
	if o.Failure == nil {
		return nil
	}
	return o.Failure
}
