package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Post is one contribution on the wall of love. Posts are immutable after
// creation; moderation may only delete them.
type Post struct {
	ID              string         `gorm:"type:uuid;primary_key" json:"id"`
	Author          string         `gorm:"not null;default:'Anonymous'" json:"author"`
	Message         string         `json:"message"`
	ImageURL        string         `json:"image_url,omitempty"`
	AdditionalMedia pq.StringArray `gorm:"type:text[]" json:"additional_media,omitempty"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Author == "" {
		p.Author = "Anonymous"
	}
	return nil
}
