package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vikramsomai/portfolio-skills-manager/internal/apperror"
	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
	"github.com/vikramsomai/portfolio-skills-manager/internal/repositories"
	"github.com/vikramsomai/portfolio-skills-manager/internal/validation"
	"gorm.io/gorm"
)

type SkillService struct {
	skills   repositories.SkillRepository
	validate *validation.Validator
}

func NewSkillService(skills repositories.SkillRepository, validate *validation.Validator) *SkillService {
	return &SkillService{skills: skills, validate: validate}
}

func (s *SkillService) List(ctx context.Context, filter repositories.SkillFilter, sort string) ([]models.Skill, error) {
	skills, err := s.skills.List(ctx, filter, sort)
	if err != nil {
		return nil, apperror.NewInternal("Error fetching skills", err)
	}
	return skills, nil
}

func (s *SkillService) Get(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	skill, err := s.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Skill not found")
		}
		return nil, apperror.NewInternal("Error fetching skill", err)
	}
	return skill, nil
}

// Create validates the payload and stamps the acting admin as creator.
func (s *SkillService) Create(ctx context.Context, input validation.SkillInput, actorID uuid.UUID) (*models.Skill, error) {
	input.Normalize()
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	skill := &models.Skill{
		Name:              input.Name,
		Level:             input.Level,
		Category:          input.Category,
		Description:       input.Description,
		YearsOfExperience: input.YearsOfExperience,
		CreatedBy:         &actorID,
	}
	if err := s.skills.Create(ctx, skill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflict("Skill with this name already exists")
		}
		return nil, apperror.NewInternal("Error creating skill", err)
	}
	return skill, nil
}

// Update replaces the skill's fields and stamps the acting admin as updater.
func (s *SkillService) Update(ctx context.Context, id uuid.UUID, input validation.SkillInput, actorID uuid.UUID) (*models.Skill, error) {
	input.Normalize()
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	skill, err := s.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFound("Skill not found")
		}
		return nil, apperror.NewInternal("Error updating skill", err)
	}

	skill.Name = input.Name
	skill.Level = input.Level
	skill.Category = input.Category
	skill.Description = input.Description
	skill.YearsOfExperience = input.YearsOfExperience
	skill.UpdatedBy = &actorID

	if err := s.skills.Update(ctx, skill); err != nil {
		// Renaming onto another skill's name hits the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflict("Skill with this name already exists")
		}
		return nil, apperror.NewInternal("Error updating skill", err)
	}
	return skill, nil
}

// Delete removes the skill. Deleting a missing identifier is NotFound, never
// a silent success.
func (s *SkillService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFound("Skill not found")
		}
		return apperror.NewInternal("Error deleting skill", err)
	}
	return nil
}
