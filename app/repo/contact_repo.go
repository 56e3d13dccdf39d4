package repo

import (
	"errors"

	"gritline/app/models"

	"gorm.io/gorm"
)

type ContactRepository struct{ db *gorm.DB }

func NewContactRepository(db *gorm.DB) *ContactRepository { return &ContactRepository{db: db} }

func (r *ContactRepository) Create(c *models.ContactSubmission) error { return r.db.Create(c).Error }

func (r *ContactRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactSubmission{}, id).Error
}

func (r *ContactRepository) Get(id uint) (*models.ContactSubmission, error) {
	var c models.ContactSubmission
	err := r.db.First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContactRepository) ListAll() ([]models.ContactSubmission, error) {
	var out []models.ContactSubmission
	err := r.db.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *ContactRepository) SetHandled(id uint, handled bool) error {
	return r.db.Model(&models.ContactSubmission{}).Where("id = ?", id).Update("handled", handled).Error
}
