package api

import (
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/forms"
	"github.com/rpupo63/portfolio-backend/services"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.ProjectService
}

func newProjectHandler(service services.ProjectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

func parseProjectInput(form *multipart.Form) (services.ProjectInput, error) {
	image, err := forms.File(form, "image")
	if err != nil {
		return services.ProjectInput{}, err
	}
	return services.ProjectInput{
		Title:       forms.Value(form, "title"),
		Description: forms.Value(form, "description"),
		Image:       image,
		Tags:        forms.Strings(form, "tags"),
		DemoLink:    forms.Value(form, "demoLink"),
		GithubLink:  forms.Value(form, "githubLink"),
		Featured:    forms.Bool(form, "featured"),
		Details:     forms.Value(form, "details"),
	}, nil
}

// getAllProjects retrieves all projects that are not in the trash
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.service.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]interface{}{
			"projects": projects,
			"total":    len(projects),
		})
	}
}

// getTrashedProjects retrieves soft-deleted projects awaiting restore or
// permanent deletion
func (h projectHandler) getTrashedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.service.ListTrashed(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]interface{}{
			"projects": projects,
			"total":    len(projects),
		})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.Get(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project from a multipart form submission
func (h projectHandler) createProject() http.HandlerFunc {
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

		input, err := parseProjectInput(form)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read project form")
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.Create(r.Context(), userID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject updates an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		form, err := multipartForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, err := parseProjectInput(form)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read project form")
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.Update(r.Context(), projectID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, project)
	}
}

// deleteProject moves a project to the trash
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project moved to trash",
		})
	}
}

// restoreProject brings a project back from the trash
func (h projectHandler) restoreProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.Restore(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project restored",
		})
	}
}

// permanentlyDeleteProject removes a project and its attachments for good
func (h projectHandler) permanentlyDeleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := idParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.PermanentDelete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project permanently deleted",
		})
	}
}
