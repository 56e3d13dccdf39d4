package models

import "time"

type BlogPost struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex;size:191;not null"`
	Title       string `gorm:"size:255;not null"`
	Excerpt     string `gorm:"size:1024"`
	Body        string `gorm:"type:text"`
	Published   bool   `gorm:"index"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
