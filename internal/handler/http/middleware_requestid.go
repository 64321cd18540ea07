// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-profile-client/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// withRequestID attaches a child logger carrying request_id to the request
// context and echoes the ID back. The client's X-Request-ID is reused when
// present.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(utils.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(utils.RequestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
