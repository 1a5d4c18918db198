package model

import (
	"time"

	"github.com/lib/pq"
)

type PostModel struct {
	ID              string         `gorm:"type:uuid;primary_key"`
	Author          string         `gorm:"not null;default:'Anonymous'"`
	Message         string
	ImageURL        string
	AdditionalMedia pq.StringArray `gorm:"type:text[]"`
	CreatedAt       time.Time      `gorm:"index"`
}

func (PostModel) TableName() string {
	return "posts"
}
