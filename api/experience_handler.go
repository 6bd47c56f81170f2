package api

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/forms"
	"github.com/rpupo63/portfolio-backend/services"
)

const dateLayout = "2006-01-02"

type experienceHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.ExperienceService
}

func newExperienceHandler(service services.ExperienceService) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

func parseExperienceInput(form *multipart.Form) (services.ExperienceInput, error) {
	logo, err := forms.File(form, "logo")
	if err != nil {
		return services.ExperienceInput{}, err
	}

	input := services.ExperienceInput{
		JobTitle:     forms.Value(form, "job_title"),
		Company:      forms.Value(form, "company"),
		Location:     forms.Value(form, "location"),
		Description:  forms.Value(form, "description"),
		Website:      forms.Value(form, "website"),
		Logo:         logo,
		Achievements: forms.Strings(form, "achievements"),
		Type:         forms.Value(form, "type"),
		Published:    forms.Bool(form, "published"),
	}
	if input.Type == "" {
		input.Type = "job"
	}

	if raw := forms.Value(form, "start_date"); raw != "" {
		start, err := time.Parse(dateLayout, raw)
		if err != nil {
			return input, errs.NewBadRequestError("invalid start_date, expected YYYY-MM-DD")
		}
		input.StartDate = start
	}
	if raw := forms.Value(form, "end_date"); raw != "" {
		end, err := time.Parse(dateLayout, raw)
		if err != nil {
			return input, errs.NewBadRequestError("invalid end_date, expected YYYY-MM-DD")
		}
		input.EndDate = &end
	}

	return input, nil
}

// getAllExperiences retrieves all experiences that are not in the trash
func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.service.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]interface{}{
			"experiences": experiences,
			"total":       len(experiences),
		})
	}
}

// getTrashedExperiences retrieves soft-deleted experiences
func (h experienceHandler) getTrashedExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.service.ListTrashed(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]interface{}{
			"experiences": experiences,
			"total":       len(experiences),
		})
	}
}

// getExperience retrieves a specific experience by ID
func (h experienceHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.service.Get(r.Context(), experienceID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, experience)
	}
}

// createExperience creates a new experience from a multipart form submission
func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		form, err := multipartForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, err := parseExperienceInput(form)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read experience form")
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.service.Create(r.Context(), userID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, experience)
	}
}

// updateExperience updates an existing experience
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		form, err := multipartForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, err := parseExperienceInput(form)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read experience form")
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.service.Update(r.Context(), experienceID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, experience)
	}
}

// deleteExperience moves an experience to the trash
func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Delete(r.Context(), experienceID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience moved to trash",
		})
	}
}

// restoreExperience brings an experience back from the trash
func (h experienceHandler) restoreExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Restore(r.Context(), experienceID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience restored",
		})
	}
}

// permanentlyDeleteExperience removes an experience and its logo for good
func (h experienceHandler) permanentlyDeleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := idParam(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.PermanentDelete(r.Context(), experienceID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience permanently deleted",
		})
	}
}
