package repo

import (
	"errors"

	"gritline/app/models"

	"gorm.io/gorm"
)

type TestimonialRepository struct{ db *gorm.DB }

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) Create(t *models.Testimonial) error { return r.db.Create(t).Error }

func (r *TestimonialRepository) Save(t *models.Testimonial) error { return r.db.Save(t).Error }

func (r *TestimonialRepository) Delete(id uint) error {
	return r.db.Delete(&models.Testimonial{}, id).Error
}

func (r *TestimonialRepository) Get(id uint) (*models.Testimonial, error) {
	var t models.Testimonial
	err := r.db.First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TestimonialRepository) ListAll() ([]models.Testimonial, error) {
	var out []models.Testimonial
	err := r.db.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *TestimonialRepository) ListApproved() ([]models.Testimonial, error) {
	var out []models.Testimonial
	err := r.db.Where("approved = ?", true).Order("id DESC").Find(&out).Error
	return out, err
}
