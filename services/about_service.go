package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/forms"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/storage"
)

// AboutService orchestrates updates to the singleton about profile: the
// profile picture plus the nested statistics, social links and trusted-by
// lists, where every trusted-by entry carries its own logo attachment.
type AboutService struct {
	logger zerolog.Logger
	abouts *database.AboutRepo
	store  storage.BlobStore
}

func NewAboutService(abouts *database.AboutRepo, store storage.BlobStore) AboutService {
	return AboutService{
		logger: log.With().Str("serviceName", "aboutService").Logger(),
		abouts: abouts,
		store:  store,
	}
}

type AboutInput struct {
	Title          string
	Description    []string
	ProfilePicture forms.FileInput
	Email          string
	Phone          string
	Address        string
	Location       string
	Statistics     []models.Statistic
	SocialLinks    []models.SocialLink
	TrustedBy      []forms.TrustedByInput
}

func (in AboutInput) validate() error {
	v := errs.NewValidationError()
	if strings.TrimSpace(in.Title) == "" {
		v.Add("title", "The Title field is required.")
	} else if len(in.Title) > 255 {
		v.Add("title", "The Title field must not exceed 255 characters.")
	}
	validateEmail(v, "email", in.Email)
	forms.ValidateFile(v, "profile_picture", in.ProfilePicture, []string{"jpg", "jpeg", "png"}, 5<<20)
	if len(in.Description) == 0 {
		v.Add("description", "The Description field is required.")
	}
	if len(in.Statistics) == 0 {
		v.Add("statistics", "Statistics cannot be empty, please add at least one.")
	}
	if len(in.SocialLinks) == 0 {
		v.Add("social_links", "Social Links cannot be empty, please add at least one.")
	}
	if len(in.TrustedBy) == 0 {
		v.Add("trusted_by", "Trusted By cannot be empty, please add at least one.")
	}
	for i, entry := range in.TrustedBy {
		forms.ValidateFile(v, fmt.Sprintf("trusted_by.%d.logo", i), entry.Logo, []string{"jpg", "jpeg", "png"}, 5<<20)
	}
	return v.ErrOrNil()
}

// Get returns the singleton profile, or a not-found error when no row exists.
func (s AboutService) Get(ctx context.Context) (*models.About, error) {
	about, err := s.abouts.Get()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "about profile", err)
	}
	if about == nil {
		return nil, errs.NewNotFoundError("no about profile exists")
	}
	return about, nil
}

// Update applies a submitted payload to the singleton profile. Trusted-by
// logos are reconciled per index against the stored list; entries dropped by
// normalization or removed by a shorter submission get their stored logos
// deleted once the row write succeeds.
func (s AboutService) Update(ctx context.Context, in AboutInput) (*models.About, error) {
	about, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	rec := forms.NewReconciler(s.store)

	picture, err := rec.Single(ctx, about.ProfilePicture, in.ProfilePicture, storage.HintAboutPicture)
	if err != nil {
		rec.Rollback(ctx)
		return nil, err
	}

	trusted := forms.NormalizeTrustedBy(in.TrustedBy)

	priorLogos := make([]*string, len(about.TrustedBy))
	for i, entry := range about.TrustedBy {
		priorLogos[i] = entry.Logo
	}
	submittedLogos := make([]forms.FileInput, len(trusted))
	for i, entry := range trusted {
		submittedLogos[i] = entry.Logo
	}

	finalLogos, err := rec.List(ctx, priorLogos, submittedLogos, storage.HintTrustedByLogo)
	if err != nil {
		rec.Rollback(ctx)
		return nil, err
	}

	// Stored entries beyond the submitted length disappeared; their logos
	// are no longer referenced by anything.
	for i := len(trusted); i < len(about.TrustedBy); i++ {
		if priorLogos[i] != nil {
			rec.ScheduleDelete(*priorLogos[i])
		}
	}

	trustedBy := make([]models.TrustedBy, len(trusted))
	for i, entry := range trusted {
		trustedBy[i] = models.TrustedBy{
			Name: entry.Name,
			Logo: finalLogos[i],
			URL:  entry.URL,
		}
	}

	about.Title = strings.TrimSpace(in.Title)
	about.Description = datatypes.NewJSONSlice(forms.TrimStringList(in.Description))
	about.ProfilePicture = picture
	about.Email = strings.TrimSpace(in.Email)
	about.Phone = strings.TrimSpace(in.Phone)
	about.Address = strings.TrimSpace(in.Address)
	about.Location = strings.TrimSpace(in.Location)
	about.Statistics = datatypes.NewJSONSlice(forms.NormalizeStatistics(in.Statistics))
	about.SocialLinks = datatypes.NewJSONSlice(forms.NormalizeSocialLinks(in.SocialLinks))
	about.TrustedBy = datatypes.NewJSONSlice(trustedBy)

	if err := s.abouts.Update(about); err != nil {
		rec.Rollback(ctx)
		return nil, errs.NewDatabaseError("update", "about profile", err)
	}

	rec.Commit(ctx)
	return about, nil
}
