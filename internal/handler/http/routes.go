package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the status API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)
		r.Get("/sessions", h.listSessions)
		r.Get("/sessions/{username}", h.getSession)
	})

	return router
}
