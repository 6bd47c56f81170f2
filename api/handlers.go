package api

import (
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rpupo63/portfolio-backend/storage"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler    projectHandler
	skillHandler      skillHandler
	experienceHandler experienceHandler
	aboutHandler      aboutHandler
	profileHandler    profileHandler
	categoryHandler   categoryHandler
	portfolioHandler  portfolioHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, store storage.BlobStore) *routeHandlers {
	return &routeHandlers{
		projectHandler:    newProjectHandler(services.NewProjectService(db.ProjectRepo(), store)),
		skillHandler:      newSkillHandler(services.NewSkillService(db.SkillRepo(), db.CategoryRepo())),
		experienceHandler: newExperienceHandler(services.NewExperienceService(db.ExperienceRepo(), store)),
		aboutHandler:      newAboutHandler(services.NewAboutService(db.AboutRepo(), store)),
		profileHandler:    newProfileHandler(services.NewProfileService(db.UserRepo(), store)),
		categoryHandler:   newCategoryHandler(services.NewCategoryService(db.CategoryRepo())),
		portfolioHandler:  newPortfolioHandler(db),
	}
}
