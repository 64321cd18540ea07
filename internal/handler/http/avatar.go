// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-profile-client/internal/app"
	"github.com/MKhiriev/go-profile-client/internal/logger"
	"github.com/MKhiriev/go-profile-client/internal/stubserver"
	"github.com/MKhiriev/go-profile-client/internal/utils"
	"github.com/go-chi/chi/v5"
)

const (
	avatarFormField = "avatar"
	maxAvatarSize   = 5 << 20
)

type avatarResponse struct {
	Avatar string `json:"avatar"`
}

func (h *Handler) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	userID, _ := utils.GetUserIDFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Err(err).Msg("avatar is too large")
			utils.WriteMessage(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Msg("invalid multipart form")
		utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile(avatarFormField)
	if err != nil {
		log.Err(err).Msg("no avatar part in form")
		utils.WriteMessage(w, app.MsgNoAvatarProvided, http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, r, err, "Handler.uploadAvatar")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}

	path, err := h.profiles.SaveAvatar(ctx, userID, stubserver.Avatar{ContentType: contentType, Content: content})
	if err != nil {
		writeError(w, r, err, "Handler.uploadAvatar")
		return
	}

	log.Debug().Str("filename", header.Filename).Int("size", len(content)).Msg("avatar stored")
	_, _ = utils.WriteJSON(w, resultResponse{
		Message: app.MsgAvatarUploaded,
		Data:    avatarResponse{Avatar: absoluteURL(r, path)},
	}, http.StatusOK)
}

func (h *Handler) getAvatar(w http.ResponseWriter, r *http.Request) {
	avatar, err := h.profiles.Avatar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "Handler.getAvatar")
		return
	}

	w.Header().Set("Content-Type", avatar.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(avatar.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(avatar.Content)
}
