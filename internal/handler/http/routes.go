// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the stub's route table. Only logon is reachable without a
// bearer token.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post("/api/v1/auth/logon", h.logon)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/v1/accounts", func(r chi.Router) {
			r.Get("/", h.listAccounts)
			r.Post("/", h.createAccount)
			r.Get("/statistics", h.getStatistics)

			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", h.deleteAccount)
				r.Post("/rotate", h.rotatePassword)
				r.Post("/validate", h.validateCredential)
				r.Get("/validations", h.getValidationHistory)
				r.Get("/audit", h.getAuditLogs)
			})
		})

		r.Get("/api/v1/credentials/{id}", h.getCredential)
		r.Post("/api/v1/reports/export", h.exportReport)
	})

	return router
}
