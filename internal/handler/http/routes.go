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
	router.Use(middleware.StripSlashes)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// form API, authenticated by the session cookie inside the handlers
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Post("/users", h.registerUser)
		r.Post("/sessions", h.login)
		r.Delete("/sessions", h.logout)
		r.Get("/profile", h.profile)
		r.Post("/reset_password", h.getResetPasswordToken)
		r.Put("/reset_password", h.updatePassword)
	})

	// JSON API behind the authorization gate; unmatched paths under the
	// prefix are gated too
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(h.withGate)

		r.Get("/status", h.status)
		r.Get("/unauthorized", h.unauthorized)
		r.Get("/forbidden", h.forbidden)
		r.Post("/auth_session/login", h.sessionLogin)
		r.Delete("/auth_session/logout", h.sessionLogout)
		r.Get("/users/me", h.me)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
