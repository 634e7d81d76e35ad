package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the one-per-user career record. The owning user's name and
// avatar are joined in through the User projection on reads.
type Profile struct {
	ID             uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID    `json:"-" gorm:"type:char(36);uniqueIndex;not null"`
	User           UserRef      `json:"user" gorm:"foreignKey:UserID;references:ID"`
	Company        string       `json:"company" gorm:"size:255"`
	Website        string       `json:"website" gorm:"size:512"`
	Location       string       `json:"location" gorm:"size:255"`
	Status         string       `json:"status" gorm:"size:255;not null"`
	Skills         []string     `json:"skills" gorm:"serializer:json;type:text"`
	Bio            string       `json:"bio" gorm:"type:text"`
	GithubUsername string       `json:"githubusername" gorm:"size:255"`
	Social         Social       `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	Experience     []Experience `json:"experience" gorm:"foreignKey:ProfileID"`
	Education      []Education  `json:"education" gorm:"foreignKey:ProfileID"`
	CreatedAt      time.Time    `json:"date"`
	UpdatedAt      time.Time    `json:"-"`
}

// BeforeCreate sets the UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Social holds the normalized social links.
type Social struct {
	Youtube   string `json:"youtube,omitempty" gorm:"size:512"`
	Twitter   string `json:"twitter,omitempty" gorm:"size:512"`
	Instagram string `json:"instagram,omitempty" gorm:"size:512"`
	Linkedin  string `json:"linkedin,omitempty" gorm:"size:512"`
	Facebook  string `json:"facebook,omitempty" gorm:"size:512"`
}

// Experience is one work-history entry; newest entries sort first.
type Experience struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID   uuid.UUID  `json:"-" gorm:"type:char(36);index;not null"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Company     string     `json:"company" gorm:"size:255;not null"`
	Location    string     `json:"location" gorm:"size:255"`
	From        time.Time  `json:"from" gorm:"not null"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description" gorm:"type:text"`
	CreatedAt   time.Time  `json:"-" gorm:"precision:6"`
}

// BeforeCreate sets the UUID before creating the record.
func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Education is one education entry; newest entries sort first.
type Education struct {
	ID           uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID    uuid.UUID  `json:"-" gorm:"type:char(36);index;not null"`
	School       string     `json:"school" gorm:"size:255;not null"`
	Degree       string     `json:"degree" gorm:"size:255;not null"`
	FieldOfStudy string     `json:"fieldofstudy" gorm:"size:255;not null"`
	From         time.Time  `json:"from" gorm:"not null"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description" gorm:"type:text"`
	CreatedAt    time.Time  `json:"-" gorm:"precision:6"`
}

// BeforeCreate sets the UUID before creating the record.
func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
