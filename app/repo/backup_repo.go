package repo

import (
	"errors"

	"gritline/app/models"

	"gorm.io/gorm"
)

type BackupRecordRepository struct{ db *gorm.DB }

func NewBackupRecordRepository(db *gorm.DB) *BackupRecordRepository {
	return &BackupRecordRepository{db: db}
}

func (r *BackupRecordRepository) Create(rec *models.BackupRecord) error {
	return r.db.Create(rec).Error
}

// MarkCompleted sets status, file URL, file key and file size in one update
// so the "completed implies url, key and size" invariant holds in the stored
// row.
func (r *BackupRecordRepository) MarkCompleted(id uint, fileURL, fileKey string, fileSize int64) error {
	return r.db.Model(&models.BackupRecord{}).Where("id = ?", id).Updates(map[string]any{
		"status":    models.BackupStatusCompleted,
		"file_url":  fileURL,
		"file_key":  fileKey,
		"file_size": fileSize,
	}).Error
}

func (r *BackupRecordRepository) MarkFailed(id uint) error {
	return r.db.Model(&models.BackupRecord{}).Where("id = ?", id).Update("status", models.BackupStatusFailed).Error
}

func (r *BackupRecordRepository) ListAll() ([]models.BackupRecord, error) {
	var out []models.BackupRecord
	err := r.db.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *BackupRecordRepository) FindByBackupID(backupID string) (*models.BackupRecord, error) {
	var rec models.BackupRecord
	err := r.db.Where("backup_id = ?", backupID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *BackupRecordRepository) FindByID(id uint) (*models.BackupRecord, error) {
	var rec models.BackupRecord
	err := r.db.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *BackupRecordRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.BackupRecord{}, id).Error
}
