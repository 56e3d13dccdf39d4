package models

import "time"

// ContactSubmission is a quote/enquiry submitted through the public contact form.
type ContactSubmission struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:191;not null"`
	Email     string `gorm:"size:191;not null"`
	Phone     string `gorm:"size:64"`
	Service   string `gorm:"size:128"` // service interest, free text from the form dropdown
	Message   string `gorm:"size:4096"`
	Handled   bool   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
