// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the result of a successful login. Only Token is persisted; any
// other members of the login response are ignored.
type Session struct {
	// Token is the opaque bearer credential sent as
	// "Authorization: Bearer <token>" on every authenticated call.
	Token string `json:"token"`
}

// IsEmpty reports whether the session carries no usable token.
func (s Session) IsEmpty() bool {
	return s.Token == ""
}

// ExpiresAt returns the "exp" claim of the token when the token is a JWT.
//
// The signature is NOT verified: the client cannot verify it and only uses
// the value for display. ok is false for opaque (non-JWT) tokens and for
// JWTs without an expiry.
func (s Session) ExpiresAt() (expiresAt time.Time, ok bool) {
	if s.IsEmpty() {
		return time.Time{}, false
	}

	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// Subject returns the "sub" claim of a JWT token, or an empty string when the
// token is opaque or carries no subject.
func (s Session) Subject() string {
	if s.IsEmpty() {
		return ""
	}

	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return ""
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}
