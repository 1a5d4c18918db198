package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SongRequest struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	SongTitle     string    `gorm:"not null" json:"song_title"`
	Artist        string    `gorm:"not null" json:"artist"`
	Album         string    `json:"album,omitempty"`
	AlbumArt      string    `json:"album_art,omitempty"`
	SongURL       string    `json:"song_url,omitempty"`
	RequesterName string    `gorm:"not null;default:'Anonymous'" json:"requester_name"`
	Upvotes       int       `gorm:"default:0;index" json:"upvotes"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (s *SongRequest) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.RequesterName == "" {
		s.RequesterName = "Anonymous"
	}
	return nil
}
