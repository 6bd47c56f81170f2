package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public portfolio endpoint and the authenticated
// dashboard endpoints.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/portfolio", handlers.portfolioHandler.getPortfolio())
	})

	// Authenticated dashboard routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.authenticate)
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/trashed", handlers.projectHandler.getTrashedProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/project/{projectID}/restore", handlers.projectHandler.restoreProject())
		r.Delete("/project/{projectID}/permanent", handlers.projectHandler.permanentlyDeleteProject())

		// Experience endpoints
		r.Get("/experiences", handlers.experienceHandler.getAllExperiences())
		r.Get("/experiences/trashed", handlers.experienceHandler.getTrashedExperiences())
		r.Get("/experience/{experienceID}", handlers.experienceHandler.getExperience())
		r.Post("/experience", handlers.experienceHandler.createExperience())
		r.Put("/experience/{experienceID}", handlers.experienceHandler.updateExperience())
		r.Delete("/experience/{experienceID}", handlers.experienceHandler.deleteExperience())
		r.Post("/experience/{experienceID}/restore", handlers.experienceHandler.restoreExperience())
		r.Delete("/experience/{experienceID}/permanent", handlers.experienceHandler.permanentlyDeleteExperience())

		// Skill endpoints
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Post("/skill", handlers.skillHandler.createSkill())
		r.Put("/skill/{skillID}", handlers.skillHandler.updateSkill())
		r.Delete("/skill/{skillID}", handlers.skillHandler.deleteSkill())

		// Category endpoints
		r.Get("/categories", handlers.categoryHandler.getAllCategories())
		r.Post("/category", handlers.categoryHandler.createCategory())
		r.Delete("/category/{categoryID}", handlers.categoryHandler.deleteCategory())

		// About profile endpoints
		r.Get("/about", handlers.aboutHandler.getAbout())
		r.Put("/about", handlers.aboutHandler.updateAbout())

		// Account settings endpoints
		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Put("/profile", handlers.profileHandler.updateProfile())
	})
}
