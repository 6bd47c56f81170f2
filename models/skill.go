package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill represents a single skill with a proficiency level from 1 to 100
type Skill struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string     `json:"name" gorm:"type:text;not null"`
	Level       int        `json:"level" gorm:"not null;default:0"`
	Description string     `json:"description" gorm:"type:text"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty" gorm:"type:uuid;index"`
	Category    *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Published   bool       `json:"published" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (s *Skill) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
