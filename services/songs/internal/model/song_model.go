package model

import "time"

// SongRequestModel is the database model for SongRequest entity
type SongRequestModel struct {
	ID            string    `gorm:"type:uuid;primary_key"`
	SongTitle     string    `gorm:"not null"`
	Artist        string    `gorm:"not null"`
	Album         string
	AlbumArt      string
	SongURL       string
	RequesterName string    `gorm:"not null;default:'Anonymous'"`
	Upvotes       int       `gorm:"default:0;index"`
	CreatedAt     time.Time `gorm:"index"`
}

func (SongRequestModel) TableName() string {
	return "song_requests"
}
