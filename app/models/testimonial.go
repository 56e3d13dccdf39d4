package models

import "time"

type Testimonial struct {
	ID        uint   `gorm:"primaryKey"`
	Author    string `gorm:"size:191;not null"`
	Location  string `gorm:"size:191"`
	Quote     string `gorm:"size:2048;not null"`
	Rating    int    `gorm:"not null;default:5"`
	Approved  bool   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
