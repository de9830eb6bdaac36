// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/go-token-client/internal/config"
	"github.com/MKhiriev/go-token-client/internal/logger"
	"github.com/MKhiriev/go-token-client/internal/utils"
	"github.com/MKhiriev/go-token-client/models"
)

// authService is the concrete implementation of AuthService.
//
// With an empty tokenSignKey it runs in static mode: every client receives
// staticToken and only that exact value is accepted. Otherwise it issues
// HS256 JWTs that expire after tokenDuration, so a client holding an old
// token gets a natural 401.
type authService struct {
	// staticToken is handed out in static mode.
	staticToken string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.ServerAuth, logger *logger.Logger) AuthService {
	return &authService{
		staticToken:   cfg.StaticToken,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (a *authService) signed() bool {
	return a.tokenSignKey != ""
}

// CreateToken issues a token for clientID.
//
// Returns ErrInvalidDataProvided for an empty clientID, or a wrapped
// ErrTokenCreationFailed if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, clientID string) (models.Token, error) {
	if clientID == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	if !a.signed() {
		return models.Token{SignedString: a.staticToken, ClientID: clientID}, nil
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, clientID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("client", clientID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw token string.
//
// Any validation failure (expired, wrong issuer, malformed, wrong static
// value) is normalised to ErrTokenIsExpiredOrInvalid so that callers do not
// need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if !a.signed() {
		if subtle.ConstantTimeCompare([]byte(tokenString), []byte(a.staticToken)) != 1 {
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}
		return models.Token{SignedString: tokenString, ClientID: "static"}, nil
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
