package backup

import (
	"strings"
	"testing"

	"gritline/app/models"
)

func TestRestoreIntoEmptyDB(t *testing.T) {
	src := newTestDB(t)
	seed(t, src)
	snap, err := BuildSnapshot(src, Meta{BackupID: "bk_r1", CreatedBy: "admin"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	dst := newTestDB(t)
	res, err := Restore(dst, snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	inserted, skipped, failed := 0, 0, 0
	for _, tr := range res.Tables {
		inserted += tr.Inserted
		skipped += tr.Skipped
		failed += tr.Failed
	}
	if inserted != 5 || skipped != 0 || failed != 0 {
		t.Fatalf("inserted=%d skipped=%d failed=%d, want 5/0/0", inserted, skipped, failed)
	}
	var users int64
	dst.Model(&models.User{}).Count(&users)
	if users != 2 {
		t.Errorf("users after restore = %d, want 2", users)
	}
	if got := res.Message(); got != "Restored 5 tables, 5 rows" {
		t.Errorf("message = %q", got)
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	seed(t, gdb)
	snap, err := BuildSnapshot(gdb, Meta{BackupID: "bk_r2", CreatedBy: "admin"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// restoring over the same data inserts nothing and deletes nothing
	res, err := Restore(gdb, snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	for name, tr := range res.Tables {
		if tr.Inserted != 0 || tr.Failed != 0 {
			t.Errorf("table %s: inserted=%d failed=%d, want both 0", name, tr.Inserted, tr.Failed)
		}
	}
	var users int64
	gdb.Model(&models.User{}).Count(&users)
	if users != 2 {
		t.Errorf("users = %d, want 2", users)
	}
	if !strings.Contains(res.Message(), "skipped") {
		t.Errorf("message should report skipped rows: %q", res.Message())
	}
}

func TestRestoreIgnoresUnknownTables(t *testing.T) {
	src := newTestDB(t)
	seed(t, src)
	snap, err := BuildSnapshot(src, Meta{BackupID: "bk_r3", CreatedBy: "admin"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// a table the registry no longer knows, e.g. from an older deployment
	snap.Tables["call_logs"] = []Row{{"id": 1, "number": "0113 000000"}}

	dst := newTestDB(t)
	res, err := Restore(dst, snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if _, ok := res.Tables["call_logs"]; ok {
		t.Error("unknown table must be ignored, not restored")
	}
}

func TestRestoreDropsUnknownColumns(t *testing.T) {
	src := newTestDB(t)
	seed(t, src)
	snap, err := BuildSnapshot(src, Meta{BackupID: "bk_r4", CreatedBy: "admin"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for i := range snap.Tables["users"] {
		snap.Tables["users"][i]["legacy_notes"] = "dropped column"
	}

	dst := newTestDB(t)
	res, err := Restore(dst, snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if tr := res.Tables["users"]; tr.Inserted != 2 || tr.Failed != 0 {
		t.Errorf("users: inserted=%d failed=%d, want 2/0", tr.Inserted, tr.Failed)
	}
}

func TestRestoreContinuesAfterRowFailure(t *testing.T) {
	src := newTestDB(t)
	seed(t, src)
	snap, err := BuildSnapshot(src, Meta{BackupID: "bk_r5", CreatedBy: "admin"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	// a row that survives column filtering but violates NOT NULL
	snap.Tables["users"] = append([]Row{{"id": 99, "role": "user"}}, snap.Tables["users"]...)

	dst := newTestDB(t)
	res, err := Restore(dst, snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	tr := res.Tables["users"]
	if tr.Failed != 1 {
		t.Errorf("failed = %d, want 1", tr.Failed)
	}
	if tr.Inserted != 2 {
		t.Errorf("inserted = %d, want 2 (restore must continue past the bad row)", tr.Inserted)
	}
}
