package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.serverCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(h.withBodyLimit)

	// status routes, no auth
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)
		r.Get("/info", h.info)
	})

	// auth routes, no token required
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// owner-scoped card routes, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/cards", h.createCard)
		r.Get("/api/cards", h.listCards)
		r.Get("/api/cards/{cardID}", h.getCard)
		r.Put("/api/cards/{cardID}", h.updateCard)
		r.Delete("/api/cards/{cardID}", h.deleteCard)
	})

	// public card view routes, no auth
	router.Group(func(r chi.Router) {
		r.Get("/public/cards/{cardID}", h.viewCardByID)
		r.Get("/public/cards/url/{publicSlug}", h.viewCardBySlug)
		r.Post("/public/cards/{cardID}/share", h.recordShare)
	})

	return router
}
