package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/forms"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/storage"
)

// ExperienceService orchestrates experience writes, including the company
// logo attachment and the achievements list.
type ExperienceService struct {
	logger      zerolog.Logger
	experiences *database.ExperienceRepo
	store       storage.BlobStore
}

func NewExperienceService(experiences *database.ExperienceRepo, store storage.BlobStore) ExperienceService {
	return ExperienceService{
		logger:      log.With().Str("serviceName", "experienceService").Logger(),
		experiences: experiences,
		store:       store,
	}
}

type ExperienceInput struct {
	JobTitle     string
	Company      string
	Location     string
	StartDate    time.Time
	EndDate      *time.Time
	Description  string
	Website      string
	Logo         forms.FileInput
	Achievements []string
	Type         string
	Published    bool
}

func (in ExperienceInput) validate() error {
	v := errs.NewValidationError()
	if strings.TrimSpace(in.JobTitle) == "" {
		v.Add("job_title", "The Job Title field is required.")
	}
	if strings.TrimSpace(in.Company) == "" {
		v.Add("company", "The Company field is required.")
	}
	if in.StartDate.IsZero() {
		v.Add("start_date", "The Start Date field is required.")
	}
	if in.EndDate != nil && !in.StartDate.IsZero() && in.EndDate.Before(in.StartDate) {
		v.Add("end_date", "The End Date must be after the Start Date.")
	}
	switch in.Type {
	case models.ExperienceTypeJob, models.ExperienceTypeInternship, models.ExperienceTypeVolunteer:
	default:
		v.Add("type", "The selected Type is invalid.")
	}
	forms.ValidateFile(v, "logo", in.Logo, []string{"jpg", "jpeg", "png", "gif", "svg"}, 10<<20)
	return v.ErrOrNil()
}

func (s ExperienceService) Create(ctx context.Context, userID uuid.UUID, in ExperienceInput) (*models.Experience, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	rec := forms.NewReconciler(s.store)
	logo, err := rec.Single(ctx, nil, in.Logo, storage.HintExperienceLogo)
	if err != nil {
		rec.Rollback(ctx)
		return nil, err
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = "Remote"
	}

	experience := &models.Experience{
		JobTitle:     strings.TrimSpace(in.JobTitle),
		Company:      strings.TrimSpace(in.Company),
		Location:     location,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Description:  in.Description,
		Website:      strings.TrimSpace(in.Website),
		Logo:         logo,
		Achievements: datatypes.NewJSONSlice(forms.TrimStringList(in.Achievements)),
		Type:         in.Type,
		Published:    in.Published,
		UserID:       userID,
	}

	if err := s.experiences.Add(experience); err != nil {
		rec.Rollback(ctx)
		return nil, errs.NewDatabaseError("create", "experience", err)
	}

	rec.Commit(ctx)
	return experience, nil
}

func (s ExperienceService) Update(ctx context.Context, id uuid.UUID, in ExperienceInput) (*models.Experience, error) {
	experience, err := s.findExperience(id)
	if err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	rec := forms.NewReconciler(s.store)
	logo, err := rec.Single(ctx, experience.Logo, in.Logo, storage.HintExperienceLogo)
	if err != nil {
		rec.Rollback(ctx)
		return nil, err
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = "Remote"
	}

	experience.JobTitle = strings.TrimSpace(in.JobTitle)
	experience.Company = strings.TrimSpace(in.Company)
	experience.Location = location
	experience.StartDate = in.StartDate
	experience.EndDate = in.EndDate
	experience.Description = in.Description
	experience.Website = strings.TrimSpace(in.Website)
	experience.Logo = logo
	experience.Achievements = datatypes.NewJSONSlice(forms.TrimStringList(in.Achievements))
	experience.Type = in.Type
	experience.Published = in.Published

	if err := s.experiences.Update(experience); err != nil {
		rec.Rollback(ctx)
		return nil, errs.NewDatabaseError("update", "experience", err)
	}

	rec.Commit(ctx)
	return experience, nil
}

// Delete soft-deletes an experience, leaving attachments untouched.
func (s ExperienceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findExperience(id); err != nil {
		return err
	}
	if err := s.experiences.SoftDelete(id); err != nil {
		return errs.NewDatabaseError("delete", "experience", err)
	}
	return nil
}

// Restore clears the tombstone marker on a trashed experience.
func (s ExperienceService) Restore(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findExperienceWithTrashed(id); err != nil {
		return err
	}
	if err := s.experiences.Restore(id); err != nil {
		return errs.NewDatabaseError("restore", "experience", err)
	}
	return nil
}

// PermanentDelete removes the logo from the blob store, then the row.
func (s ExperienceService) PermanentDelete(ctx context.Context, id uuid.UUID) error {
	experience, err := s.findExperienceWithTrashed(id)
	if err != nil {
		return err
	}

	deletePath(ctx, s.store, s.logger, experience.Logo)

	if err := s.experiences.HardDelete(id); err != nil {
		return errs.NewDatabaseError("permanently delete", "experience", err)
	}
	return nil
}

func (s ExperienceService) Get(ctx context.Context, id uuid.UUID) (*models.Experience, error) {
	return s.findExperience(id)
}

func (s ExperienceService) List(ctx context.Context) ([]*models.Experience, error) {
	experiences, err := s.experiences.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "experiences", err)
	}
	return experiences, nil
}

func (s ExperienceService) ListTrashed(ctx context.Context) ([]*models.Experience, error) {
	experiences, err := s.experiences.FindTrashed()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "trashed experiences", err)
	}
	return experiences, nil
}

func (s ExperienceService) findExperience(id uuid.UUID) (*models.Experience, error) {
	experience, err := s.experiences.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("experience")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "experience", err)
	}
	return experience, nil
}

func (s ExperienceService) findExperienceWithTrashed(id uuid.UUID) (*models.Experience, error) {
	experience, err := s.experiences.FindByIDWithTrashed(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("experience")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "experience", err)
	}
	return experience, nil
}
