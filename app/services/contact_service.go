package services

import (
	"errors"
	"strings"

	"gritline/app/models"
	"gritline/app/repo"
)

var ErrContactNotFound = errors.New("contact submission not found")

type ContactService struct{ contacts *repo.ContactRepository }

func NewContactService(contacts *repo.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Submit(c *models.ContactSubmission) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		return errors.New("a valid email is required")
	}
	return s.contacts.Create(c)
}

func (s *ContactService) ListAll() ([]models.ContactSubmission, error) { return s.contacts.ListAll() }

func (s *ContactService) MarkHandled(id uint, handled bool) error {
	existing, err := s.contacts.Get(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrContactNotFound
	}
	return s.contacts.SetHandled(id, handled)
}

func (s *ContactService) Delete(id uint) error {
	existing, err := s.contacts.Get(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrContactNotFound
	}
	return s.contacts.Delete(id)
}
