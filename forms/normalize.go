package forms

import (
	"strings"

	"github.com/rpupo63/portfolio-backend/models"
)

// Normalization of submitted nested payloads, applied after validation and
// before reconciliation/persistence. All of these are pure and idempotent:
// running them twice yields the same result.

// TrimStringList trims whitespace from every entry and drops entries that are
// empty after trimming, preserving order.
func TrimStringList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// NormalizeStatistics trims both sub-fields and drops entries where label and
// value are both empty. A blank placeholder row is never persisted.
func NormalizeStatistics(in []models.Statistic) []models.Statistic {
	out := make([]models.Statistic, 0, len(in))
	for _, s := range in {
		s.Label = strings.TrimSpace(s.Label)
		s.Value = strings.TrimSpace(s.Value)
		if s.Label == "" && s.Value == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// NormalizeSocialLinks trims sub-fields and drops entries with an empty
// platform.
func NormalizeSocialLinks(in []models.SocialLink) []models.SocialLink {
	out := make([]models.SocialLink, 0, len(in))
	for _, l := range in {
		l.Platform = strings.TrimSpace(l.Platform)
		l.URL = strings.TrimSpace(l.URL)
		if l.Platform == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// TrustedByInput is one submitted trusted-by entry: plain sub-fields plus the
// three-state logo signal.
type TrustedByInput struct {
	Name string
	URL  string
	Logo FileInput
}

// NormalizeTrustedBy trims sub-fields and drops entries with an empty name.
// Dropped entries may still own a previously stored logo; the orchestrator
// deletes those by comparing list lengths after reconciliation.
func NormalizeTrustedBy(in []TrustedByInput) []TrustedByInput {
	out := make([]TrustedByInput, 0, len(in))
	for _, t := range in {
		t.Name = strings.TrimSpace(t.Name)
		t.URL = strings.TrimSpace(t.URL)
		if t.Name == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
