// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-token-client/internal/app"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/utils"
)

// auth rejects the request with 401 "Not Authorized!" unless it carries a
// bearer token accepted by [service.AuthService.ParseToken]. The client ID
// of an accepted token is stored in the context under [utils.ClientIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgNotAuthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			http.Error(w, app.MsgNotAuthorized, http.StatusUnauthorized)
			return
		}

		clientID, err := token.GetClientID()
		if err != nil {
			log.Err(err).Msg("token carries no client id")
			http.Error(w, app.MsgNotAuthorized, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.ClientIDCtxKey, clientID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return tokenString, nil
}
