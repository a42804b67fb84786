// Copyright 2026 LegalDoc Contributors
// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/health", h.health)
	})

	// routes behind the access guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/documents", h.uploadDocument)
		r.Get("/api/documents", h.listDocuments)
		r.Get("/api/documents/{documentID}", h.getDocument)

		r.Post("/api/summarize", h.summarize)
		r.Post("/api/translate", h.translate)
		r.Post("/api/chat", h.chat)
	})

	return router
}
