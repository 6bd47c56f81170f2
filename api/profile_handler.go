package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/forms"
	"github.com/rpupo63/portfolio-backend/services"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.ProfileService
}

func newProfileHandler(service services.ProfileService) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// getProfile retrieves the authenticated operator's account settings
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.service.Get(r.Context(), userID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, user)
	}
}

// updateProfile applies a multipart form submission to the operator account,
// reconciling the avatar and resume attachments
func (h profileHandler) updateProfile() http.HandlerFunc {
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

		avatar, err := forms.File(form, "avatar")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		resume, err := forms.File(form, "resume")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input := services.ProfileInput{
			Name:       forms.Value(form, "name"),
			Email:      forms.Value(form, "email"),
			Occupation: forms.Value(form, "occupation"),
			Bio:        forms.Value(form, "bio"),
			Avatar:     avatar,
			Resume:     resume,
		}

		user, err := h.service.Update(r.Context(), userID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, user)
	}
}
