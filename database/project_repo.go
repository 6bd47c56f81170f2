package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects that are not soft-deleted, featured first,
// newest first within each group.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("featured DESC, created_at DESC").Find(&projects).Error
	return projects, err
}

// FindTrashed returns only soft-deleted projects.
func (r *ProjectRepo) FindTrashed() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Unscoped().Where("deleted_at IS NOT NULL").Order("deleted_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, excluding soft-deleted rows.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDWithTrashed returns a project by its ID regardless of trash state.
func (r *ProjectRepo) FindByIDWithTrashed(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Unscoped().First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// SoftDelete sets the tombstone marker without removing the row.
func (r *ProjectRepo) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// Restore clears the tombstone marker on a soft-deleted project.
func (r *ProjectRepo) Restore(id uuid.UUID) error {
	return r.db.Unscoped().Model(&models.Project{}).Where("id = ?", id).Update("deleted_at", nil).Error
}

// HardDelete removes the row permanently.
func (r *ProjectRepo) HardDelete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&models.Project{}, "id = ?", id).Error
}
