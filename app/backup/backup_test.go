package backup

import (
	"io"
	"path/filepath"
	"testing"

	"gritline/app/db"
	"gritline/app/models"
	"gritline/global"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func init() {
	global.Logger = zerolog.New(io.Discard)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.User{}, &models.GalleryItem{}, &models.Testimonial{},
		&models.ContactSubmission{}, &models.BlogPost{}, &models.BackupRecord{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func seed(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	users := []models.User{
		{Username: "admin", PasswordHash: "x", Role: "admin", DisplayName: "Admin"},
		{Username: "editor", PasswordHash: "y", Role: "user", DisplayName: "Editor"},
	}
	if err := gdb.Create(&users).Error; err != nil {
		t.Fatalf("seed users: %v", err)
	}
	items := []models.GalleryItem{
		{Title: "Alloy wheels", Category: "automotive", Published: true},
		{Title: "Steel gate", Category: "structural", Published: false},
	}
	if err := gdb.Create(&items).Error; err != nil {
		t.Fatalf("seed gallery: %v", err)
	}
	if err := gdb.Create(&models.Testimonial{Author: "J. Smith", Location: "Leeds", Quote: "Great finish.", Rating: 5, Approved: true}).Error; err != nil {
		t.Fatalf("seed testimonial: %v", err)
	}
}

func TestRegistryExcludesBackupRecords(t *testing.T) {
	for _, name := range TableNames() {
		if name == "backup_records" {
			t.Fatal("backup_records must not be part of the registry")
		}
	}
	if len(Registry()) != 5 {
		t.Fatalf("expected 5 registered tables, got %d", len(Registry()))
	}
}

func TestDumpRows(t *testing.T) {
	gdb := newTestDB(t)
	seed(t, gdb)

	users := Registry()[0]
	if users.Name != "users" {
		t.Fatalf("expected users first in registry, got %s", users.Name)
	}
	rows, err := users.DumpRows(gdb)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["username"] != "admin" {
		t.Errorf("expected username column, got %v", rows[0])
	}
}

func TestInsertRowOutcomes(t *testing.T) {
	gdb := newTestDB(t)
	seed(t, gdb)

	users := Registry()[0]
	rows, err := users.DumpRows(gdb)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}

	// re-inserting an existing row is a skip, not an error
	out := users.InsertRow(gdb, rows[0])
	if out.Status != SkippedDuplicate {
		t.Fatalf("expected SkippedDuplicate, got %v (err %v)", out.Status, out.Err)
	}

	// a fresh row inserts
	fresh := Row{"username": "new", "password_hash": "z", "role": "user"}
	if out := users.InsertRow(gdb, fresh); out.Status != Inserted {
		t.Fatalf("expected Inserted, got %v (err %v)", out.Status, out.Err)
	}

	// violating NOT NULL is a failure, not a skip
	bad := Row{"role": "user"}
	if out := users.InsertRow(gdb, bad); out.Status != FailedInsert {
		t.Fatalf("expected FailedInsert, got %v", out.Status)
	}

	// the empty row never reaches the driver
	if out := users.InsertRow(gdb, Row{}); out.Status != FailedInsert {
		t.Fatalf("expected FailedInsert for empty row, got %v", out.Status)
	}
}

func TestFilterColumns(t *testing.T) {
	gdb := newTestDB(t)
	users := Registry()[0]
	cols, err := users.LiveColumns(gdb)
	if err != nil {
		t.Fatalf("live columns: %v", err)
	}
	if !cols["username"] {
		t.Fatal("expected username in live column set")
	}

	row := Row{"username": "a", "legacy_notes": "kept from an old schema", "id": 1}
	got := FilterColumns(row, cols)
	if _, ok := got["legacy_notes"]; ok {
		t.Error("unknown column should be dropped")
	}
	if got["username"] != "a" {
		t.Error("known column should be kept")
	}
}
