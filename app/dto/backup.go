package dto

import (
	"encoding/json"
	"time"

	"gritline/app/models"
)

type CreateBackupRequest struct {
	Description string `json:"description"`
}

type CreateBackupResponse struct {
	Success  bool   `json:"success"`
	BackupID string `json:"backupId"`
	FileURL  string `json:"fileUrl"`
}

type BackupRecordResponse struct {
	ID             uint      `json:"id"`
	BackupID       string    `json:"backupId"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	FileURL        *string   `json:"fileUrl"`
	FileSize       *int64    `json:"fileSize"`
	TablesIncluded []string  `json:"tablesIncluded"`
	CreatedBy      string    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ToBackupRecordResponse(rec models.BackupRecord) BackupRecordResponse {
	var tables []string
	_ = json.Unmarshal([]byte(rec.TablesIncluded), &tables)
	return BackupRecordResponse{
		ID:             rec.ID,
		BackupID:       rec.BackupID,
		Description:    rec.Description,
		Status:         rec.Status,
		FileURL:        rec.FileURL,
		FileSize:       rec.FileSize,
		TablesIncluded: tables,
		CreatedBy:      rec.CreatedBy,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

type DownloadBackupResponse struct {
	FileURL string `json:"fileUrl"`
}

type RestoreBackupRequest struct {
	BackupID string `json:"backupId"`
}

type RestoreBackupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DeleteBackupRequest struct {
	ID uint `json:"id"`
}
