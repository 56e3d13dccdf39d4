package models

import "time"

const (
	BackupStatusCreating  = "creating"
	BackupStatusCompleted = "completed"
	BackupStatusFailed    = "failed"
)

// BackupRecord describes one backup attempt and its outcome. Failed attempts
// stay recorded. Status is "completed" exactly when FileURL, FileKey and
// FileSize are all set; MarkCompleted updates the fields together to keep
// that true. FileKey is the storage object key at upload time, so archives
// stay reachable after the configured key prefix changes.
type BackupRecord struct {
	ID             uint    `gorm:"primaryKey"`
	BackupID       string  `gorm:"uniqueIndex;size:64;not null"`
	Description    string  `gorm:"size:512"`
	Status         string  `gorm:"size:16;not null;default:creating"`
	FileURL        *string `gorm:"size:512"`
	FileKey        *string `gorm:"size:512"`
	FileSize       *int64
	TablesIncluded string `gorm:"size:1024"` // JSON array of table names
	CreatedBy      string `gorm:"size:191"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
