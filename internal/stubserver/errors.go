// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"errors"

	"github.com/MKhiriev/go-profile-client/internal/app"
)

// Error texts double as HTTP response messages.
var (
	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)
	ErrInvalidCredentials  = errors.New(app.MsgInvalidLoginPassword)
	ErrInvalidToken        = errors.New(app.MsgTokenIsExpiredOrInvalid)
	ErrUserNotFound        = errors.New(app.MsgUserNotFound)
	ErrUsernameTaken       = errors.New("username already taken")
	ErrAvatarNotFound      = errors.New(app.MsgAvatarNotFound)
)
