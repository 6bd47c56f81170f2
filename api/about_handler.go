package api

import (
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/forms"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/services"
)

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   services.AboutService
}

func newAboutHandler(service services.AboutService) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// parseAboutInput reads the nested form layout the dashboard submits:
// description[N], statistics[N][label], social_links[N][platform],
// trusted_by[N][name] and trusted_by[N][logo] file parts.
func parseAboutInput(form *multipart.Form) (services.AboutInput, error) {
	picture, err := forms.File(form, "profile_picture")
	if err != nil {
		return services.AboutInput{}, err
	}

	input := services.AboutInput{
		Title:          forms.Value(form, "title"),
		Description:    forms.Strings(form, "description"),
		ProfilePicture: picture,
		Email:          forms.Value(form, "email"),
		Phone:          forms.Value(form, "phone"),
		Address:        forms.Value(form, "address"),
		Location:       forms.Value(form, "location"),
	}

	for _, i := range forms.EntryIndices(form, "statistics") {
		input.Statistics = append(input.Statistics, models.Statistic{
			Label: forms.EntryValue(form, "statistics", i, "label"),
			Value: forms.EntryValue(form, "statistics", i, "value"),
		})
	}

	for _, i := range forms.EntryIndices(form, "social_links") {
		input.SocialLinks = append(input.SocialLinks, models.SocialLink{
			Platform: forms.EntryValue(form, "social_links", i, "platform"),
			URL:      forms.EntryValue(form, "social_links", i, "url"),
		})
	}

	for _, i := range forms.EntryIndices(form, "trusted_by") {
		logo, err := forms.EntryFile(form, "trusted_by", i, "logo")
		if err != nil {
			return input, err
		}
		input.TrustedBy = append(input.TrustedBy, forms.TrustedByInput{
			Name: forms.EntryValue(form, "trusted_by", i, "name"),
			URL:  forms.EntryValue(form, "trusted_by", i, "url"),
			Logo: logo,
		})
	}

	return input, nil
}

// getAbout retrieves the singleton about profile
func (h aboutHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		about, err := h.service.Get(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, about)
	}
}

// updateAbout applies a multipart form submission to the about profile
func (h aboutHandler) updateAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, err := multipartForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, err := parseAboutInput(form)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read about form")
			h.responder.WriteError(w, err)
			return
		}

		about, err := h.service.Update(r.Context(), input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, about)
	}
}
