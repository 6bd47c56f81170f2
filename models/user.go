package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the operator account. Password holds an opaque hash managed by the
// authentication layer; it is never written through the profile pipeline.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	Name       string    `json:"name" gorm:"type:text;not null"`
	Email      string    `json:"email" gorm:"type:text;not null;unique"`
	Password   string    `json:"-" gorm:"type:text"`
	Occupation string    `json:"occupation" gorm:"type:text"`
	Bio        string    `json:"bio" gorm:"type:text"`
	Avatar     *string   `json:"avatar,omitempty" gorm:"type:text"`
	Resume     *string   `json:"resume,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
