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
		r.Post("/api/device/register", h.register)
		r.Post("/api/device/challenge", h.challenge)
		r.Post("/api/device/login", h.login)
	})

	// routes behind device authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/backup/", h.upload)
		r.Get("/api/backup/", h.list)
		r.Get("/api/backup/sync", h.syncStates)
		r.Get("/api/backup/{id}", h.download)
		r.Delete("/api/backup/{id}", h.remove)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
