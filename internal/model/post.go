package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a feed entry. Name and avatar are a snapshot of the author taken
// at creation time, not a live reference.
type Post struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);index;not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"size:255"`
	Avatar    string    `json:"avatar" gorm:"size:512"`
	Likes     []Like    `json:"likes" gorm:"foreignKey:PostID"`
	Comments  []Comment `json:"comments" gorm:"foreignKey:PostID"`
	CreatedAt time.Time `json:"date" gorm:"precision:6"`
}

// BeforeCreate sets the UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Like records one user liking one post. The (post_id, user_id) pair is
// unique so the at-most-once rule also holds at the data layer.
type Like struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PostID    uuid.UUID `json:"-" gorm:"type:char(36);not null;uniqueIndex:idx_post_user"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);not null;uniqueIndex:idx_post_user"`
	CreatedAt time.Time `json:"-" gorm:"precision:6"`
}

// BeforeCreate sets the UUID before creating the record.
func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Comment is a denormalized comment entry on a post.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PostID    uuid.UUID `json:"-" gorm:"type:char(36);index;not null"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);not null"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Name      string    `json:"name" gorm:"size:255"`
	Avatar    string    `json:"avatar" gorm:"size:512"`
	CreatedAt time.Time `json:"date" gorm:"precision:6"`
}

// BeforeCreate sets the UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
