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
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/health", h.health)
	})

	router.Route("/api/device", func(r chi.Router) {
		if h.services.AuthService.Enabled() {
			r.Use(h.auth)
		}
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Post("/connect", h.connect)
		r.Get("/profiles", h.getProfiles)
		r.Get("/profile", h.getProfile)
		r.Put("/profile", h.setProfile)
		r.Get("/status", h.getStatus)
		r.Put("/status", h.setStatus)
		r.Get("/apistatus", h.getStatusAPI)
		r.Put("/brightness", h.setBrightness)
		r.Get("/events", h.getEvents)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
