package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Paths mirror the original form-driven
// site, so action endpoints live under /on_* and some are GETs.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes; the session is still resolved so authenticated viewers
	// get their pinned set back on listings.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.resolveSession)

		r.Get("/", handlers.projectHandler.byPopularity())
		r.Get("/Order_by_date", handlers.projectHandler.byDate())
		r.Get("/view_project/{projectID}", handlers.projectHandler.viewProject())

		r.Post("/on_register", handlers.authHandler.register())
		r.Post("/on_login", handlers.authHandler.login())
		r.Get("/on_logout", handlers.authHandler.logout())
	})

	// Routes that need an authenticated session
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.resolveSession)
		r.Use(authMiddleware.requireSession)

		r.Get("/my_projects", handlers.projectHandler.myProjects())
		r.Get("/project_form", handlers.projectHandler.projectForm())
		r.Post("/on_add_project", handlers.projectHandler.addProject())

		r.Get("/on_like/{projectID}", handlers.projectHandler.like())
		r.Get("/on_unlike/{projectID}", handlers.projectHandler.unlike())
		r.Get("/on_pin/{projectID}", handlers.projectHandler.pin())
		r.Get("/on_unpin/{projectID}", handlers.projectHandler.unpin())

		r.Post("/on_comment/{projectID}", handlers.commentHandler.addComment())
		r.Get("/on_delete_comment/{projectID}/{commentID}", handlers.commentHandler.deleteComment())
	})
}
