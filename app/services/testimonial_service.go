package services

import (
	"context"
	"errors"

	"gritline/app/cache"
	"gritline/app/models"
	"gritline/app/repo"
)

const testimonialCacheKey = "testimonials:approved"

var ErrTestimonialNotFound = errors.New("testimonial not found")

type TestimonialService struct {
	testimonials *repo.TestimonialRepository
	cache        *cache.Cache
}

func NewTestimonialService(t *repo.TestimonialRepository, c *cache.Cache) *TestimonialService {
	return &TestimonialService{testimonials: t, cache: c}
}

func (s *TestimonialService) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	var cached []models.Testimonial
	if s.cache.Get(ctx, testimonialCacheKey, &cached) {
		return cached, nil
	}
	out, err := s.testimonials.ListApproved()
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, testimonialCacheKey, out)
	return out, nil
}

func (s *TestimonialService) ListAll() ([]models.Testimonial, error) {
	return s.testimonials.ListAll()
}

func (s *TestimonialService) Create(ctx context.Context, t *models.Testimonial) error {
	if t.Author == "" || t.Quote == "" {
		return errors.New("author and quote are required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		t.Rating = 5
	}
	if err := s.testimonials.Create(t); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, testimonialCacheKey)
	return nil
}

func (s *TestimonialService) Update(ctx context.Context, t *models.Testimonial) error {
	existing, err := s.testimonials.Get(t.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTestimonialNotFound
	}
	if err := s.testimonials.Save(t); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, testimonialCacheKey)
	return nil
}

func (s *TestimonialService) SetApproved(ctx context.Context, id uint, approved bool) error {
	existing, err := s.testimonials.Get(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTestimonialNotFound
	}
	existing.Approved = approved
	if err := s.testimonials.Save(existing); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, testimonialCacheKey)
	return nil
}

func (s *TestimonialService) Delete(ctx context.Context, id uint) error {
	existing, err := s.testimonials.Get(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTestimonialNotFound
	}
	if err := s.testimonials.Delete(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, testimonialCacheKey)
	return nil
}
