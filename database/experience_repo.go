package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns all experiences that are not soft-deleted, newest first.
func (r *ExperienceRepo) FindAll() ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.Order("start_date DESC").Find(&experiences).Error
	return experiences, err
}

// FindPublished returns published experiences only, newest first.
func (r *ExperienceRepo) FindPublished() ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.Where("published = ?", true).Order("start_date DESC").Find(&experiences).Error
	return experiences, err
}

// FindTrashed returns only soft-deleted experiences.
func (r *ExperienceRepo) FindTrashed() ([]*models.Experience, error) {
	var experiences []*models.Experience
	err := r.db.Unscoped().Where("deleted_at IS NOT NULL").Order("deleted_at DESC").Find(&experiences).Error
	return experiences, err
}

// FindByID returns an experience by its ID, excluding soft-deleted rows.
func (r *ExperienceRepo) FindByID(id uuid.UUID) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.First(&experience, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// FindByIDWithTrashed returns an experience by its ID regardless of trash state.
func (r *ExperienceRepo) FindByIDWithTrashed(id uuid.UUID) (*models.Experience, error) {
	var experience models.Experience
	err := r.db.Unscoped().First(&experience, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &experience, nil
}

// Add inserts a new experience into the database
func (r *ExperienceRepo) Add(experience *models.Experience) error {
	return r.db.Create(experience).Error
}

// Update updates an existing experience in the database
func (r *ExperienceRepo) Update(experience *models.Experience) error {
	return r.db.Save(experience).Error
}

// SoftDelete sets the tombstone marker without removing the row.
func (r *ExperienceRepo) SoftDelete(id uuid.UUID) error {
	return r.db.Delete(&models.Experience{}, "id = ?", id).Error
}

// Restore clears the tombstone marker on a soft-deleted experience.
func (r *ExperienceRepo) Restore(id uuid.UUID) error {
	return r.db.Unscoped().Model(&models.Experience{}).Where("id = ?", id).Update("deleted_at", nil).Error
}

// HardDelete removes the row permanently.
func (r *ExperienceRepo) HardDelete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&models.Experience{}, "id = ?", id).Error
}
