package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the API under a common prefix, with the token guard
// applied only to the protected group.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public endpoints
		r.Post("/auth/register", handlers.authHandler.register())
		r.Post("/auth/login", handlers.authHandler.login())
		r.Get("/blogs", handlers.blogHandler.list())
		r.Get("/blogs/{blogID}", handlers.blogHandler.getByID())

		// Token-guarded endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/auth/me", handlers.authHandler.me())
			r.Post("/blogs/save-draft", handlers.blogHandler.saveDraft())
			r.Post("/blogs/publish", handlers.blogHandler.publish())
			r.Delete("/blogs/{blogID}", handlers.blogHandler.deleteBlog())
		})
	})
}
