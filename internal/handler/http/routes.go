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
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Post("/login", h.login)
		r.Post("/signup", h.signup)
		r.Post("/forgot-password", h.forgotPassword)
		r.Post("/reset-password", h.resetPassword)
	})

	// routes behind the token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.getAllUsers)

		r.Get("/products", h.getAllProducts)
		r.Post("/products", h.createProduct)
		r.Get("/products/{productID}", h.getProduct)
		r.Put("/products/{productID}", h.updateProduct)
		r.Delete("/products/{productID}", h.deleteProduct)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
