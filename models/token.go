// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a bearer credential issued by the stub token endpoint.
//
// In static mode only SignedString is populated. In signed mode Token and
// RegisteredClaims carry the parsed HS256 JWT; ClientID mirrors the "sub"
// claim so handlers do not need to re-read the claim set.
type Token struct {
	// Token is the underlying JWT, nil for static tokens.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the exact value sent on the wire after "Bearer ".
	SignedString string `json:"-"`

	// ClientID identifies the caller the token was issued to.
	ClientID string `json:"-"`
}

// GetClientID returns the "sub" claim of a signed token, or ClientID for a
// static one.
func (t *Token) GetClientID() (string, error) {
	if t.Token == nil {
		if t.ClientID == "" {
			return "", errors.New("token carries no client id")
		}
		return t.ClientID, nil
	}

	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token carries no client id")
	}

	return sub, nil
}

// String returns the wire form of the token.
func (t *Token) String() string {
	return t.SignedString
}
