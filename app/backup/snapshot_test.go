package backup

import (
	"bytes"
	"testing"
)

func TestBuildSnapshot(t *testing.T) {
	gdb := newTestDB(t)
	seed(t, gdb)

	meta := Meta{BackupID: "bk_test_1", Description: "pre-migration", CreatedBy: "admin"}
	snap, err := BuildSnapshot(gdb, meta)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if snap.Version != SnapshotVersion {
		t.Errorf("version = %q, want %q", snap.Version, SnapshotVersion)
	}
	if snap.Timestamp == "" {
		t.Error("timestamp not set")
	}
	if snap.Metadata != meta {
		t.Errorf("metadata = %+v, want %+v", snap.Metadata, meta)
	}
	for _, name := range TableNames() {
		if _, ok := snap.Tables[name]; !ok {
			t.Errorf("table %s missing from snapshot", name)
		}
	}
	if len(snap.Tables["users"]) != 2 {
		t.Errorf("users rows = %d, want 2", len(snap.Tables["users"]))
	}
	if len(snap.Tables["contact_submissions"]) != 0 {
		t.Errorf("empty table should dump as empty slice")
	}
}

func TestSnapshotEncodeDecode(t *testing.T) {
	gdb := newTestDB(t)
	seed(t, gdb)

	snap, err := BuildSnapshot(gdb, Meta{BackupID: "bk_test_2", CreatedBy: "admin"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := DecodeSnapshot(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Version != snap.Version || got.Metadata != snap.Metadata {
		t.Errorf("header mismatch after round trip")
	}
	if len(got.Tables) != len(snap.Tables) {
		t.Fatalf("table count = %d, want %d", len(got.Tables), len(snap.Tables))
	}
	for name, rows := range snap.Tables {
		if len(got.Tables[name]) != len(rows) {
			t.Errorf("table %s rows = %d, want %d", name, len(got.Tables[name]), len(rows))
		}
	}
}

func TestDecodeSnapshotMalformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not json", "not json at all"},
		{"missing tables", `{"version":"1.0","timestamp":"t","metadata":{}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSnapshot(bytes.NewReader([]byte(tc.in))); err == nil {
				t.Error("expected error")
			}
		})
	}
}
