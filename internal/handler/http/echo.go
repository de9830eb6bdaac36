// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-token-client/internal/app"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/utils"
)

const maxEchoBody = 1 << 20

// echoResponse is the JSON document returned by the echo routes.
type echoResponse struct {
	Method string `json:"method,omitempty"`
	Path   string `json:"path"`
	Body   any    `json:"body,omitempty"`
	Client string `json:"client,omitempty"`
}

// authenticated answers POST /authenticated once the auth middleware has
// accepted the bearer token.
func (h *Handler) authenticated(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := decodeOptionalJSON(w, r)
	if err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	clientID, _ := utils.GetClientIDFromContext(r.Context())
	log.Debug().Str("client", clientID).Msg("authenticated request accepted")

	utils.WriteJSON(w, echoResponse{
		Path:   r.URL.Path,
		Body:   body,
		Client: clientID,
	}, http.StatusOK)
}

// echo answers any other GET or POST with the request method, path and body.
func (h *Handler) echo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := decodeOptionalJSON(w, r)
	if err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, echoResponse{
		Method: r.Method,
		Path:   r.URL.Path,
		Body:   body,
	}, http.StatusOK)
}

// decodeOptionalJSON returns nil for an empty body.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request) (any, error) {
	if r.Body == nil {
		return nil, nil
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEchoBody))
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Join(errInvalidJSON, err)
	}
	return body, nil
}
