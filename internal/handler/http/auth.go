// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-profile-client/internal/app"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/utils"
	"github.com/MKhiriev/go-profile-client/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	log.Debug().Str("username", creds.Username).Msg("login attempt")

	session, err := h.profiles.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err, "Handler.login")
		return
	}

	log.Debug().Str("username", creds.Username).Msg("user successfully logged in")
	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}
