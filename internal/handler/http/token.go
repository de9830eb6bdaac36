// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/utils"
)

// issueToken answers GET /token with a plain-text token for a freshly
// generated client ID.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clientID := h.clientIDs.Generate()

	token, err := h.services.AuthService.CreateToken(ctx, clientID)
	if err != nil {
		log.Err(err).Str("client", clientID).Msg("creation of token failed")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Str("client", clientID).Msg("token issued")

	utils.WriteText(w, token.SignedString, http.StatusOK)
}
