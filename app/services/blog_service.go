package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"gritline/app/cache"
	"gritline/app/models"
	"gritline/app/repo"
)

const blogCacheKey = "blog:published"

var ErrPostNotFound = errors.New("blog post not found")

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a post title into a URL slug ("Rust Removal 101" -> "rust-removal-101").
func Slugify(title string) string {
	s := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

type BlogService struct {
	posts *repo.BlogRepository
	cache *cache.Cache
}

func NewBlogService(posts *repo.BlogRepository, c *cache.Cache) *BlogService {
	return &BlogService{posts: posts, cache: c}
}

func (s *BlogService) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	var cached []models.BlogPost
	if s.cache.Get(ctx, blogCacheKey, &cached) {
		return cached, nil
	}
	out, err := s.posts.ListPublished()
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, blogCacheKey, out)
	return out, nil
}

// GetPublished returns a published post by slug, nil when absent or unpublished.
func (s *BlogService) GetPublished(slug string) (*models.BlogPost, error) {
	p, err := s.posts.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if p == nil || !p.Published {
		return nil, nil
	}
	return p, nil
}

func (s *BlogService) ListAll() ([]models.BlogPost, error) { return s.posts.ListAll() }

func (s *BlogService) Create(ctx context.Context, p *models.BlogPost) error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Published && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	if err := s.posts.Create(p); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, blogCacheKey)
	return nil
}

func (s *BlogService) Update(ctx context.Context, p *models.BlogPost) error {
	existing, err := s.posts.Get(p.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	if p.Published && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	if err := s.posts.Save(p); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, blogCacheKey)
	return nil
}

func (s *BlogService) Delete(ctx context.Context, id uint) error {
	existing, err := s.posts.Get(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	if err := s.posts.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, blogCacheKey)
	return nil
}
