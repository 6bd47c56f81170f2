package services

import (
	"context"
	"errors"
	"strings"

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

// ProjectService orchestrates project writes: validate, normalize, reconcile
// the cover image, persist, then run scheduled file deletions.
type ProjectService struct {
	logger   zerolog.Logger
	projects *database.ProjectRepo
	store    storage.BlobStore
}

func NewProjectService(projects *database.ProjectRepo, store storage.BlobStore) ProjectService {
	return ProjectService{
		logger:   log.With().Str("serviceName", "projectService").Logger(),
		projects: projects,
		store:    store,
	}
}

// ProjectInput carries the submitted payload using the public field names
// (title, demoLink, githubLink); normalization maps them to the stored ones.
type ProjectInput struct {
	Title       string
	Description string
	Image       forms.FileInput
	Tags        []string
	DemoLink    string
	GithubLink  string
	Featured    bool
	Details     string
}

func (in ProjectInput) validate() error {
	v := errs.NewValidationError()
	if strings.TrimSpace(in.Title) == "" {
		v.Add("title", "The Project Name field is required.")
	}
	if strings.TrimSpace(in.Description) == "" {
		v.Add("description", "The Project Description field is required.")
	}
	forms.ValidateFile(v, "image", in.Image, []string{"jpg", "jpeg", "png"}, 2<<20)
	validateURL(v, "demoLink", in.DemoLink)
	validateURL(v, "githubLink", in.GithubLink)
	return v.ErrOrNil()
}

func (s ProjectService) Create(ctx context.Context, userID uuid.UUID, in ProjectInput) (*models.Project, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	rec := forms.NewReconciler(s.store)
	image, err := rec.Single(ctx, nil, in.Image, storage.HintProjectImage)
	if err != nil {
		rec.Rollback(ctx)
		return nil, err
	}

	project := &models.Project{
		Name:        strings.TrimSpace(in.Title),
		Description: in.Description,
		Image:       image,
		Tags:        datatypes.NewJSONSlice(forms.TrimStringList(in.Tags)),
		DemoLink:    strings.TrimSpace(in.DemoLink),
		GithubLink:  strings.TrimSpace(in.GithubLink),
		Featured:    in.Featured,
		Details:     in.Details,
		UserID:      userID,
	}

	if err := s.projects.Add(project); err != nil {
		rec.Rollback(ctx)
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	rec.Commit(ctx)
	return project, nil
}

func (s ProjectService) Update(ctx context.Context, id uuid.UUID, in ProjectInput) (*models.Project, error) {
	project, err := s.findProject(id)
	if err != nil {
		return nil, err
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	rec := forms.NewReconciler(s.store)
	image, err := rec.Single(ctx, project.Image, in.Image, storage.HintProjectImage)
	if err != nil {
		rec.Rollback(ctx)
		return nil, err
	}

	project.Name = strings.TrimSpace(in.Title)
	project.Description = in.Description
	project.Image = image
	project.Tags = datatypes.NewJSONSlice(forms.TrimStringList(in.Tags))
	project.DemoLink = strings.TrimSpace(in.DemoLink)
	project.GithubLink = strings.TrimSpace(in.GithubLink)
	project.Featured = in.Featured
	project.Details = in.Details

	if err := s.projects.Update(project); err != nil {
		rec.Rollback(ctx)
		return nil, errs.NewDatabaseError("update", "project", err)
	}

	rec.Commit(ctx)
	return project, nil
}

// Delete soft-deletes a project. The tombstone flips; attachments stay in
// place so Restore brings everything back.
func (s ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findProject(id); err != nil {
		return err
	}
	if err := s.projects.SoftDelete(id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	return nil
}

// Restore clears the tombstone marker on a trashed project.
func (s ProjectService) Restore(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findProjectWithTrashed(id); err != nil {
		return err
	}
	if err := s.projects.Restore(id); err != nil {
		return errs.NewDatabaseError("restore", "project", err)
	}
	return nil
}

// PermanentDelete removes the project's image from the blob store, then the
// row. Attachment deletion is best-effort and never blocks the row removal.
func (s ProjectService) PermanentDelete(ctx context.Context, id uuid.UUID) error {
	project, err := s.findProjectWithTrashed(id)
	if err != nil {
		return err
	}

	deletePath(ctx, s.store, s.logger, project.Image)

	if err := s.projects.HardDelete(id); err != nil {
		return errs.NewDatabaseError("permanently delete", "project", err)
	}
	return nil
}

func (s ProjectService) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return s.findProject(id)
}

func (s ProjectService) List(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projects.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

func (s ProjectService) ListTrashed(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.projects.FindTrashed()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "trashed projects", err)
	}
	return projects, nil
}

func (s ProjectService) findProject(id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return project, nil
}

func (s ProjectService) findProjectWithTrashed(id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.FindByIDWithTrashed(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return project, nil
}
