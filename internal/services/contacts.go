package services

import (
	"context"

	"github.com/vikramsomai/portfolio-skills-manager/internal/apperror"
	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
	"github.com/vikramsomai/portfolio-skills-manager/internal/repositories"
	"github.com/vikramsomai/portfolio-skills-manager/internal/validation"
)

type ContactService struct {
	contacts repositories.ContactRepository
	validate *validation.Validator
}

func NewContactService(contacts repositories.ContactRepository, validate *validation.Validator) *ContactService {
	return &ContactService{contacts: contacts, validate: validate}
}

// Create stores a contact message submitted through the public form.
func (s *ContactService) Create(ctx context.Context, input validation.ContactInput) (*models.Contact, error) {
	input.Normalize()
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, apperror.NewInternal("Error sending message", err)
	}
	return contact, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, apperror.NewInternal("Error fetching contacts", err)
	}
	return contacts, nil
}
