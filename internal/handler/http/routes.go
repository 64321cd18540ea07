// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withRequestID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
		r.Get("/avatars/{id}", h.getAvatar)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/user", h.getUser)
		r.Put("/user", h.updateUser)
		r.Post("/avatar", h.uploadAvatar)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
