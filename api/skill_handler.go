package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/services"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.SkillService
}

func newSkillHandler(service services.SkillService) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// skillPayload is the JSON request body for skill writes. Category is the
// public slug, resolved to the internal id by the service.
type skillPayload struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Published   bool   `json:"published"`
}

func (p skillPayload) toInput() services.SkillInput {
	return services.SkillInput{
		Name:        p.Name,
		Level:       p.Level,
		Description: p.Description,
		Category:    p.Category,
		Published:   p.Published,
	}
}

// getAllSkills retrieves all skills with their categories
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.service.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]interface{}{
			"skills": skills,
			"total":  len(skills),
		})
	}
}

// createSkill creates a new skill
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload skillPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		skill, err := h.service.Create(r.Context(), payload.toInput())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, skill)
	}
}

// updateSkill updates an existing skill
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := idParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var payload skillPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		skill, err := h.service.Update(r.Context(), skillID, payload.toInput())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, skill)
	}
}

// deleteSkill removes a skill permanently; skills have no trash
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := idParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Delete(r.Context(), skillID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})
	}
}
