// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-profile-client/internal/app"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/stubserver"
	"github.com/MKhiriev/go-profile-client/internal/utils"
)

var errorStatusMap = map[error]int{
	stubserver.ErrInvalidDataProvided: http.StatusBadRequest,
	stubserver.ErrInvalidCredentials:  http.StatusUnauthorized,
	stubserver.ErrInvalidToken:        http.StatusUnauthorized,
	stubserver.ErrUserNotFound:        http.StatusNotFound,
	stubserver.ErrUsernameTaken:       http.StatusConflict,
	stubserver.ErrAvatarNotFound:      http.StatusNotFound,
}

// statusFromError returns the response status and message for err. Unknown
// errors become a 500 with a generic message.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status, msg := statusFromError(err)

	log := logger.FromRequest(r)
	if status == http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Msg("unexpected error")
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Send()
	}

	utils.WriteMessage(w, msg, status)
}
