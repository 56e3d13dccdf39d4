package repo

import (
	"errors"

	"gritline/app/models"

	"gorm.io/gorm"
)

type BlogRepository struct{ db *gorm.DB }

func NewBlogRepository(db *gorm.DB) *BlogRepository { return &BlogRepository{db: db} }

func (r *BlogRepository) Create(p *models.BlogPost) error { return r.db.Create(p).Error }

func (r *BlogRepository) Save(p *models.BlogPost) error { return r.db.Save(p).Error }

func (r *BlogRepository) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}

func (r *BlogRepository) Get(id uint) (*models.BlogPost, error) {
	var p models.BlogPost
	err := r.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var p models.BlogPost
	err := r.db.Where("slug = ?", slug).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BlogRepository) ListAll() ([]models.BlogPost, error) {
	var out []models.BlogPost
	err := r.db.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *BlogRepository) ListPublished() ([]models.BlogPost, error) {
	var out []models.BlogPost
	err := r.db.Where("published = ?", true).Order("published_at DESC").Find(&out).Error
	return out, err
}
