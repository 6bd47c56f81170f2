package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills with their category preloaded.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Preload("Category").Order("name ASC").Find(&skills).Error
	return skills, err
}

// FindPublished returns published skills only, with categories.
func (r *SkillRepo) FindPublished() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Preload("Category").Where("published = ?", true).Order("level DESC").Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID.
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Preload("Category").First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// HardDelete removes the row permanently. Skills have no trash workflow.
func (r *SkillRepo) HardDelete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&models.Skill{}, "id = ?", id).Error
}
