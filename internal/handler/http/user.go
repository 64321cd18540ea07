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

// resultResponse is the body of successful update and upload calls.
type resultResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	profile, err := h.profiles.Profile(ctx, userID)
	if err != nil {
		writeError(w, r, err, "Handler.getUser")
		return
	}

	profile.Avatar = absoluteURL(r, profile.Avatar)
	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	var edit models.ProfileEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.profiles.UpdateProfile(ctx, userID, edit); err != nil {
		writeError(w, r, err, "Handler.updateUser")
		return
	}

	profile, err := h.profiles.Profile(ctx, userID)
	if err != nil {
		writeError(w, r, err, "Handler.updateUser")
		return
	}
	profile.Avatar = absoluteURL(r, profile.Avatar)

	_, _ = utils.WriteJSON(w, resultResponse{Message: app.MsgProfileUpdated, Data: profile}, http.StatusOK)
}

// absoluteURL turns a server-relative path into a URL on the host the
// request came in on. Empty paths stay empty.
func absoluteURL(r *http.Request, path string) string {
	if path == "" {
		return ""
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}
