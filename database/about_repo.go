package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type AboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) *AboutRepo {
	return &AboutRepo{db}
}

// Get returns the singleton about profile, or (nil, nil) when none exists.
// Callers must handle the absent case explicitly; the profile is never
// auto-created.
func (r *AboutRepo) Get() (*models.About, error) {
	var about models.About
	err := r.db.Order("created_at ASC").First(&about).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// Add inserts the about profile. Intended for seeding; Update is the normal
// write path.
func (r *AboutRepo) Add(about *models.About) error {
	return r.db.Create(about).Error
}

// Update updates the about profile in the database
func (r *AboutRepo) Update(about *models.About) error {
	return r.db.Save(about).Error
}
