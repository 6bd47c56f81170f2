package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project represents a portfolio project with an optional cover image
type Project struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string                      `json:"name" gorm:"type:text;not null"`
	Description string                      `json:"description" gorm:"type:text;not null"`
	Image       *string                     `json:"image,omitempty" gorm:"type:text"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	DemoLink    string                      `json:"demo_link" gorm:"type:text"`
	GithubLink  string                      `json:"github_link" gorm:"type:text"`
	Featured    bool                        `json:"featured" gorm:"not null;default:false"`
	Details     string                      `json:"details" gorm:"type:text"`
	UserID      uuid.UUID                   `json:"user_id" gorm:"type:uuid;index"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
	DeletedAt   gorm.DeletedAt              `json:"-" gorm:"index"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
