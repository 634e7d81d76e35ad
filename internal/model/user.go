package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the identity record created at registration.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized
	Avatar    string    `json:"avatar" gorm:"size:512"`
	CreatedAt time.Time `json:"date"`
}

// BeforeCreate sets the UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserRef is the name/avatar projection joined onto profiles.
type UserRef struct {
	ID     uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
}

// TableName maps the projection onto the users table.
func (UserRef) TableName() string { return "users" }
