package services

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"gritline/app/db"
	"gritline/app/models"
	"gritline/app/repo"
	"gritline/app/storage"

	"gorm.io/gorm"
)

func newContentDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Connect(db.Config{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "test.db")})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.User{}, &models.GalleryItem{}, &models.Testimonial{},
		&models.ContactSubmission{}, &models.BlogPost{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Rust Removal 101", "rust-removal-101"},
		{"Why Shot Blasting?", "why-shot-blasting"},
		{"  Spaced  Out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestContactSubmitValidation(t *testing.T) {
	svc := NewContactService(repo.NewContactRepository(newContentDB(t)))

	cases := []struct {
		name    string
		sub     models.ContactSubmission
		wantErr bool
	}{
		{"valid", models.ContactSubmission{Name: "Jo", Email: "jo@example.com", Message: "Quote please"}, false},
		{"missing name", models.ContactSubmission{Email: "jo@example.com"}, true},
		{"missing email", models.ContactSubmission{Name: "Jo"}, true},
		{"bad email", models.ContactSubmission{Name: "Jo", Email: "not-an-email"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Submit(&tc.sub)
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}

	subs, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("submissions = %d, want 1", len(subs))
	}

	if err := svc.MarkHandled(subs[0].ID, true); err != nil {
		t.Fatalf("mark handled: %v", err)
	}
	if err := svc.MarkHandled(9999, true); err == nil {
		t.Error("expected not-found error")
	}
}

func TestTestimonialApproval(t *testing.T) {
	gdb := newContentDB(t)
	svc := NewTestimonialService(repo.NewTestimonialRepository(gdb), nil)
	ctx := context.Background()

	tm := models.Testimonial{Author: "K. Hart", Quote: "Came up like new.", Rating: 5}
	if err := svc.Create(ctx, &tm); err != nil {
		t.Fatalf("create: %v", err)
	}

	approved, err := svc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 0 {
		t.Fatal("unapproved testimonial must not be public")
	}

	if err := svc.SetApproved(ctx, tm.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}
	approved, err = svc.ListApproved(ctx)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(approved) != 1 {
		t.Fatalf("approved = %d, want 1", len(approved))
	}
}

func TestBlogPublishing(t *testing.T) {
	gdb := newContentDB(t)
	svc := NewBlogService(repo.NewBlogRepository(gdb), nil)
	ctx := context.Background()

	p := models.BlogPost{Title: "Why Shot Blasting Beats Sanding", Published: true}
	if err := svc.Create(ctx, &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Slug != "why-shot-blasting-beats-sanding" {
		t.Errorf("slug = %q", p.Slug)
	}
	if p.PublishedAt == nil {
		t.Error("published post must get a publish time")
	}

	got, err := svc.GetPublished(p.Slug)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("published post not found by slug")
	}

	draft := models.BlogPost{Title: "Draft Notes"}
	if err := svc.Create(ctx, &draft); err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if got, _ := svc.GetPublished(draft.Slug); got != nil {
		t.Error("draft must not be served publicly")
	}
}

func TestGalleryAllowsRepeatedEmptyImageKeys(t *testing.T) {
	gdb := newContentDB(t)
	svc := NewGalleryService(repo.NewGalleryRepository(gdb), nil, nil)
	ctx := context.Background()

	// Items created before any photo upload all carry an empty ImageKey.
	for i, title := range []string{"Gate restoration", "Trailer chassis"} {
		item := models.GalleryItem{Title: title, Published: true}
		if err := svc.Create(ctx, &item); err != nil {
			t.Fatalf("create item %d without image: %v", i+1, err)
		}
	}
	pub, err := svc.ListPublished(ctx)
	if err != nil || len(pub) != 2 {
		t.Fatalf("published = %d (%v), want 2", len(pub), err)
	}
}

func TestGalleryUploadAndDelete(t *testing.T) {
	gdb := newContentDB(t)
	blobDir := t.TempDir()
	blobs, err := storage.NewLocalStorage(blobDir, "http://test.local/blobs")
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	svc := NewGalleryService(repo.NewGalleryRepository(gdb), blobs, nil)
	ctx := context.Background()

	key, url, err := svc.UploadImage(ctx, "wheels.jpg", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(key, "gallery/") || !strings.HasSuffix(key, ".jpg") {
		t.Errorf("key = %q", key)
	}
	if !strings.HasPrefix(url, "http://test.local/blobs/gallery/") {
		t.Errorf("url = %q", url)
	}

	item := models.GalleryItem{Title: "Alloy wheels", ImageKey: key, ImageURL: url, Published: true}
	if err := svc.Create(ctx, &item); err != nil {
		t.Fatalf("create: %v", err)
	}
	pub, err := svc.ListPublished(ctx)
	if err != nil || len(pub) != 1 {
		t.Fatalf("published = %d (%v), want 1", len(pub), err)
	}

	if err := svc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := blobs.Download(ctx, key); err == nil {
		t.Error("image blob should be removed with its gallery item")
	}
}
