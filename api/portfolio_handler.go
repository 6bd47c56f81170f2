package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/database"
)

// portfolioHandler serves the public read-only view of the portfolio. It
// reads straight from the repositories; only the dashboard goes through the
// orchestrating services.
type portfolioHandler struct {
	responder   Responder
	logger      zerolog.Logger
	aboutRepo   *database.AboutRepo
	projectRepo *database.ProjectRepo
	skillRepo   *database.SkillRepo
	expRepo     *database.ExperienceRepo
}

func newPortfolioHandler(db database.Database) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		aboutRepo:   db.AboutRepo(),
		projectRepo: db.ProjectRepo(),
		skillRepo:   db.SkillRepo(),
		expRepo:     db.ExperienceRepo(),
	}
}

// getPortfolio returns everything the public page renders: the about
// profile, published skills, published experiences and all live projects.
// An absent about profile yields null rather than an error so the page can
// still render the rest.
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.aboutRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about profile", err))
			return
		}

		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		skills, err := h.skillRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		experiences, err := h.expRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"about":       about,
			"projects":    projects,
			"skills":      skills,
			"experiences": experiences,
		})
	}
}
