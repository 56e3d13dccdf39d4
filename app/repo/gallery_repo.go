package repo

import (
	"errors"

	"gritline/app/models"

	"gorm.io/gorm"
)

type GalleryRepository struct{ db *gorm.DB }

func NewGalleryRepository(db *gorm.DB) *GalleryRepository { return &GalleryRepository{db: db} }

func (r *GalleryRepository) Create(item *models.GalleryItem) error { return r.db.Create(item).Error }

func (r *GalleryRepository) Save(item *models.GalleryItem) error { return r.db.Save(item).Error }

func (r *GalleryRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryItem{}, id).Error
}

func (r *GalleryRepository) Get(id uint) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GalleryRepository) ListAll() ([]models.GalleryItem, error) {
	var out []models.GalleryItem
	err := r.db.Order("sort_order ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *GalleryRepository) ListPublished() ([]models.GalleryItem, error) {
	var out []models.GalleryItem
	err := r.db.Where("published = ?", true).Order("sort_order ASC, id ASC").Find(&out).Error
	return out, err
}
