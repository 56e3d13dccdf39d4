package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"gritline/app/backup"
	"gritline/app/models"
	"gritline/app/repo"
	"gritline/app/storage"
	"gritline/global"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBackupNotFound      = errors.New("backup not found")
	ErrArchiveMissing      = errors.New("backup archive missing")
	ErrOperationInProgress = errors.New("a backup or restore is already in progress")
)

// BackupService orchestrates snapshot creation, archival, restore and the
// backup-record lifecycle. An advisory lock serializes create and restore so
// two operations cannot interleave table reads or double-count rows.
type BackupService struct {
	db        *gorm.DB
	records   *repo.BackupRecordRepository
	blobs     storage.Storage
	keyPrefix string
	op        sync.Mutex
}

func NewBackupService(db *gorm.DB, records *repo.BackupRecordRepository, blobs storage.Storage, keyPrefix string) *BackupService {
	if keyPrefix == "" {
		keyPrefix = "backups"
	}
	return &BackupService{db: db, records: records, blobs: blobs, keyPrefix: strings.TrimSuffix(keyPrefix, "/")}
}

func (s *BackupService) key(backupID string) string {
	return s.keyPrefix + "/" + backupID + ".json"
}

func newBackupID() string {
	return fmt.Sprintf("bk_%s_%s", time.Now().UTC().Format("20060102T150405"), strings.Split(uuid.NewString(), "-")[0])
}

// Create runs the full backup path: record at "creating", snapshot, upload,
// record to "completed". Any failure marks the record "failed" and returns the
// error; the failed attempt stays visible in the history.
func (s *BackupService) Create(ctx context.Context, description, createdBy string) (*models.BackupRecord, error) {
	if !s.op.TryLock() {
		return nil, ErrOperationInProgress
	}
	defer s.op.Unlock()

	names := backup.TableNames()
	namesJSON, err := json.Marshal(names)
	if err != nil {
		return nil, fmt.Errorf("encode table list: %w", err)
	}
	rec := &models.BackupRecord{
		BackupID:       newBackupID(),
		Description:    description,
		Status:         models.BackupStatusCreating,
		TablesIncluded: string(namesJSON),
		CreatedBy:      createdBy,
	}
	if err := s.records.Create(rec); err != nil {
		return nil, fmt.Errorf("create backup record: %w", err)
	}

	snap, err := backup.BuildSnapshot(s.db, backup.Meta{BackupID: rec.BackupID, Description: description, CreatedBy: createdBy})
	if err != nil {
		s.fail(rec)
		return nil, fmt.Errorf("build snapshot: %w", err)
	}
	data, err := snap.Encode()
	if err != nil {
		s.fail(rec)
		return nil, err
	}
	key := s.key(rec.BackupID)
	url, err := s.blobs.Upload(ctx, key, bytes.NewReader(data))
	if err != nil {
		s.fail(rec)
		return nil, fmt.Errorf("archive snapshot: %w", err)
	}
	size := int64(len(data))
	if err := s.records.MarkCompleted(rec.ID, url, key, size); err != nil {
		s.fail(rec)
		return nil, fmt.Errorf("finalize backup record: %w", err)
	}
	rec.Status = models.BackupStatusCompleted
	rec.FileURL = &url
	rec.FileKey = &key
	rec.FileSize = &size
	global.Logger.Info().Str("backup_id", rec.BackupID).Int64("size", size).Str("by", createdBy).Msg("backup created")
	return rec, nil
}

func (s *BackupService) fail(rec *models.BackupRecord) {
	if err := s.records.MarkFailed(rec.ID); err != nil {
		global.Logger.Error().Str("backup_id", rec.BackupID).Err(err).Msg("could not mark backup failed")
	}
	rec.Status = models.BackupStatusFailed
}

func (s *BackupService) ListAll() ([]models.BackupRecord, error) { return s.records.ListAll() }

// GetByBackupID returns nil, not an error, for an unknown backupId.
func (s *BackupService) GetByBackupID(backupID string) (*models.BackupRecord, error) {
	return s.records.FindByBackupID(backupID)
}

// Download returns the archive URL. Unlike GetByBackupID, a missing record or
// a record without a stored file is an error here.
func (s *BackupService) Download(backupID string) (string, error) {
	rec, err := s.records.FindByBackupID(backupID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrBackupNotFound
	}
	if rec.FileURL == nil {
		return "", ErrArchiveMissing
	}
	return *rec.FileURL, nil
}

// Restore fetches the archived snapshot and re-inserts its rows. Additive
// only; duplicate rows are skipped, so restoring twice is idempotent.
func (s *BackupService) Restore(ctx context.Context, backupID string) (backup.RestoreResult, error) {
	var zero backup.RestoreResult
	if !s.op.TryLock() {
		return zero, ErrOperationInProgress
	}
	defer s.op.Unlock()

	rec, err := s.records.FindByBackupID(backupID)
	if err != nil {
		return zero, err
	}
	if rec == nil {
		return zero, ErrBackupNotFound
	}
	if rec.FileKey == nil {
		return zero, fmt.Errorf("%w: %s", ErrArchiveMissing, backupID)
	}
	rc, err := s.blobs.Download(ctx, *rec.FileKey)
	if err != nil {
		return zero, fmt.Errorf("%w: %s", ErrArchiveMissing, backupID)
	}
	defer rc.Close()
	snap, err := backup.DecodeSnapshot(rc)
	if err != nil {
		return zero, err
	}
	res, err := backup.Restore(s.db, snap)
	if err != nil {
		return zero, err
	}
	global.Logger.Info().Str("backup_id", backupID).Str("summary", res.Message()).Msg("restore finished")
	return res, nil
}

// Delete removes the record and, best effort, the archived blob. A blob
// deletion failure is logged, not returned: the record is already gone.
func (s *BackupService) Delete(ctx context.Context, id uint) error {
	rec, err := s.records.FindByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrBackupNotFound
	}
	if err := s.records.DeleteByID(id); err != nil {
		return err
	}
	if rec.FileKey != nil {
		if err := s.blobs.Delete(ctx, *rec.FileKey); err != nil {
			global.Logger.Warn().Str("backup_id", rec.BackupID).Err(err).Msg("could not delete backup archive")
		}
	}
	return nil
}
