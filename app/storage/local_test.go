package storage

import (
	"bytes"
	"context"
	"io"
	"testing"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://test.local/blobs/")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	payload := []byte(`{"version":"1.0"}`)
	url, err := s.Upload(ctx, "backups/bk_x.json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "http://test.local/blobs/backups/bk_x.json" {
		t.Errorf("url = %q", url)
	}

	rc, err := s.Download(ctx, "backups/bk_x.json")
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("downloaded bytes differ: %q", got)
	}

	if err := s.Delete(ctx, "backups/bk_x.json"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Download(ctx, "backups/bk_x.json"); err == nil {
		t.Error("expected error after delete")
	}
	// deleting a missing blob is not an error
	if err := s.Delete(ctx, "backups/bk_x.json"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestLocalStorageMissingBlob(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "http://test.local/blobs")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := s.Download(context.Background(), "backups/nope.json"); err == nil {
		t.Error("expected error for missing blob")
	}
}
