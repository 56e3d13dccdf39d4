package storage

import (
	"context"
	"io"
)

// Storage is the blob store behind gallery images and backup archives.
// Upload returns the URL the object is reachable at.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
