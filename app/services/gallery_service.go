package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"gritline/app/cache"
	"gritline/app/models"
	"gritline/app/repo"
	"gritline/app/storage"

	"github.com/google/uuid"
)

const galleryCacheKey = "gallery:published"

var ErrGalleryItemNotFound = errors.New("gallery item not found")

type GalleryService struct {
	items *repo.GalleryRepository
	blobs storage.Storage
	cache *cache.Cache
}

func NewGalleryService(items *repo.GalleryRepository, blobs storage.Storage, c *cache.Cache) *GalleryService {
	return &GalleryService{items: items, blobs: blobs, cache: c}
}

func (s *GalleryService) ListPublished(ctx context.Context) ([]models.GalleryItem, error) {
	var cached []models.GalleryItem
	if s.cache.Get(ctx, galleryCacheKey, &cached) {
		return cached, nil
	}
	out, err := s.items.ListPublished()
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, galleryCacheKey, out)
	return out, nil
}

func (s *GalleryService) ListAll() ([]models.GalleryItem, error) { return s.items.ListAll() }

func (s *GalleryService) Create(ctx context.Context, item *models.GalleryItem) error {
	if item.Title == "" {
		return errors.New("title is required")
	}
	if err := s.items.Create(item); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, galleryCacheKey)
	return nil
}

func (s *GalleryService) Update(ctx context.Context, item *models.GalleryItem) error {
	existing, err := s.items.Get(item.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGalleryItemNotFound
	}
	if err := s.items.Save(item); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, galleryCacheKey)
	return nil
}

func (s *GalleryService) Delete(ctx context.Context, id uint) error {
	existing, err := s.items.Get(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGalleryItemNotFound
	}
	if err := s.items.Delete(id); err != nil {
		return err
	}
	if existing.ImageKey != "" {
		if err := s.blobs.Delete(ctx, existing.ImageKey); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}
	s.cache.Invalidate(ctx, galleryCacheKey)
	return nil
}

// UploadImage stores an uploaded image and returns its storage key and URL.
func (s *GalleryService) UploadImage(ctx context.Context, filename string, body io.Reader) (key, url string, err error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	key = fmt.Sprintf("gallery/%d-%s%s", time.Now().UTC().Unix(), strings.Split(uuid.NewString(), "-")[0], ext)
	url, err = s.blobs.Upload(ctx, key, body)
	if err != nil {
		return "", "", fmt.Errorf("upload image: %w", err)
	}
	return key, url, nil
}
