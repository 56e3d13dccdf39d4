package models

import "time"

// GalleryItem is one before/after photo shown on the public gallery page.
type GalleryItem struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:191;not null"`
	Caption   string `gorm:"size:512"`
	ImageKey  string `gorm:"size:255;index"`
	ImageURL  string `gorm:"size:512"`
	Category  string `gorm:"size:64;index"` // e.g. "automotive", "structural", "furniture"
	SortOrder int    `gorm:"index"`
	Published bool   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
