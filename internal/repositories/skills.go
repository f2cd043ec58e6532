package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
	"gorm.io/gorm"
)

type skillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) List(ctx context.Context, filter SkillFilter, sort string) ([]models.Skill, error) {
	query := r.db.WithContext(ctx).Model(&models.Skill{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Level != "" {
		query = query.Where("level = ?", filter.Level)
	}

	switch sort {
	case SortName:
		query = query.Order("name ASC")
	case SortLevel:
		query = query.Order("level ASC")
	case SortCategory:
		query = query.Order("category ASC, name ASC")
	default:
		// Unknown sort values fall back to newest-first.
		query = query.Order("created_at DESC")
	}

	skills := make([]models.Skill, 0)
	if err := query.Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) Update(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Skill{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
