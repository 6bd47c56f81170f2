package api

import (
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-backend/errs"
)

const maxMultipartMemory = 32 << 20

// multipartForm parses the request body as a multipart form. Attachment
// carrying endpoints accept multipart only, since the three-state file signal
// is derived from form field presence.
func multipartForm(r *http.Request) (*multipart.Form, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, errs.NewBadRequestError("expected multipart form data")
	}
	return r.MultipartForm, nil
}

// idParam extracts and parses a uuid URL parameter.
func idParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}
