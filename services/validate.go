package services

import (
	"context"
	"net/mail"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/storage"
)

// validateURL records an error when s is present but not an absolute
// http(s) URL.
func validateURL(v *errs.ValidationError, field, s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v.Add(field, "must be a valid URL")
	}
}

// validateEmail records an error when s is present but not a valid address.
func validateEmail(v *errs.ValidationError, field, s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	if _, err := mail.ParseAddress(s); err != nil {
		v.Add(field, "must be a valid email address")
	}
}

// deletePath removes a stored attachment, logging and swallowing failures.
// Used by permanent deletes, where a leaked file must not block removing the
// record.
func deletePath(ctx context.Context, store storage.BlobStore, logger zerolog.Logger, path *string) {
	if path == nil || *path == "" {
		return
	}
	if err := store.Delete(ctx, *path); err != nil {
		logger.Warn().Err(err).Str("path", *path).Msg("failed to delete attachment")
	}
}
