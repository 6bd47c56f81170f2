package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Statistic is a label/value pair shown on the about page (e.g. "Years of
// experience" / "10+").
type Statistic struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SocialLink points at a profile on an external platform.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// TrustedBy is a company entry with its own logo attachment. Logo holds a
// store-relative path, never raw bytes.
type TrustedBy struct {
	Name string  `json:"name"`
	Logo *string `json:"logo,omitempty"`
	URL  string  `json:"url"`
}

// About is the singleton profile record backing the public about section.
// Exactly one row is expected to exist; it is only ever updated.
type About struct {
	ID             uuid.UUID                       `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Title          string                          `json:"title" gorm:"type:text;not null"`
	Description    datatypes.JSONSlice[string]     `json:"description"`
	ProfilePicture *string                         `json:"profile_picture,omitempty" gorm:"type:text"`
	Email          string                          `json:"email" gorm:"type:text"`
	Phone          string                          `json:"phone" gorm:"type:text"`
	Address        string                          `json:"address" gorm:"type:text"`
	Location       string                          `json:"location" gorm:"type:text"`
	Statistics     datatypes.JSONSlice[Statistic]  `json:"statistics"`
	SocialLinks    datatypes.JSONSlice[SocialLink] `json:"social_links"`
	TrustedBy      datatypes.JSONSlice[TrustedBy]  `json:"trusted_by"`
	CreatedAt      time.Time                       `json:"created_at"`
	UpdatedAt      time.Time                       `json:"updated_at"`
}

func (a *About) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
