package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Experience type values
const (
	ExperienceTypeJob        = "job"
	ExperienceTypeInternship = "internship"
	ExperienceTypeVolunteer  = "volunteer"
)

// Experience represents a work experience entry. A nil EndDate means the
// position is current.
type Experience struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey;not null"`
	JobTitle     string                      `json:"job_title" gorm:"type:text;not null"`
	Company      string                      `json:"company" gorm:"type:text;not null"`
	Location     string                      `json:"location" gorm:"type:text;default:'Remote'"`
	StartDate    time.Time                   `json:"start_date" gorm:"not null"`
	EndDate      *time.Time                  `json:"end_date,omitempty"`
	Description  string                      `json:"description" gorm:"type:text"`
	Website      string                      `json:"website" gorm:"type:text"`
	Logo         *string                     `json:"logo,omitempty" gorm:"type:text"`
	Achievements datatypes.JSONSlice[string] `json:"achievements"`
	Type         string                      `json:"type" gorm:"type:text;not null;default:'job'"`
	Published    bool                        `json:"published" gorm:"not null;default:false"`
	UserID       uuid.UUID                   `json:"user_id" gorm:"type:uuid;index"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
	DeletedAt    gorm.DeletedAt              `json:"-" gorm:"index"`
}

func (e *Experience) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
