package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gritline/app/dto"
	"gritline/app/middleware"
	"gritline/app/services"
)

// BackupController is the admin RPC surface of the backup subsystem. Role
// checks happen in middleware before any handler runs.
type BackupController struct {
	Backups *services.BackupService
}

func NewBackupController(backups *services.BackupService) *BackupController {
	return &BackupController{Backups: backups}
}

func (c *BackupController) requesterName(r *http.Request) string {
	if claims := middleware.GetClaims(r.Context()); claims != nil {
		return claims.Username
	}
	return "unknown"
}

// Create runs a full backup synchronously and returns the new reference.
// POST /admin/backup/create  { description? }
func (c *BackupController) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.CreateBackupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	rec, err := c.Backups.Create(r.Context(), req.Description, c.requesterName(r))
	if err != nil {
		c.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.CreateBackupResponse{Success: true, BackupID: rec.BackupID, FileURL: *rec.FileURL})
}

// List returns every backup record, newest first.
// GET /admin/backup/list
func (c *BackupController) List(w http.ResponseWriter, r *http.Request) {
	recs, err := c.Backups.ListAll()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list backups failed")
		return
	}
	out := make([]dto.BackupRecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, dto.ToBackupRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get returns a single record, or null (not an error) when the id is unknown.
// GET /admin/backup/get?backupId=...
func (c *BackupController) Get(w http.ResponseWriter, r *http.Request) {
	backupID := r.URL.Query().Get("backupId")
	if backupID == "" {
		writeError(w, http.StatusBadRequest, "backupId is required")
		return
	}
	rec, err := c.Backups.GetByBackupID(backupID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if rec == nil {
		writeJSON(w, http.StatusOK, nil)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBackupRecordResponse(*rec))
}

// Download returns the archive URL for client-side fetch. Unknown ids error.
// GET /admin/backup/download?backupId=...
func (c *BackupController) Download(w http.ResponseWriter, r *http.Request) {
	backupID := r.URL.Query().Get("backupId")
	if backupID == "" {
		writeError(w, http.StatusBadRequest, "backupId is required")
		return
	}
	url, err := c.Backups.Download(backupID)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DownloadBackupResponse{FileURL: url})
}

// Restore re-inserts the archived rows, skipping duplicates.
// POST /admin/backup/restore  { backupId }
func (c *BackupController) Restore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.RestoreBackupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.BackupID == "" {
		writeError(w, http.StatusBadRequest, "backupId is required")
		return
	}
	res, err := c.Backups.Restore(r.Context(), req.BackupID)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.RestoreBackupResponse{Success: true, Message: res.Message()})
}

// Delete removes a record by surrogate id, cascading to the archived blob.
// POST /admin/backup/delete  { id }
func (c *BackupController) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.DeleteBackupRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ID == 0 {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := c.Backups.Delete(r.Context(), req.ID); err != nil {
		c.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

func (c *BackupController) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrBackupNotFound), errors.Is(err, services.ErrArchiveMissing):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrOperationInProgress):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
