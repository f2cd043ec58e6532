package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/vikramsomai/portfolio-skills-manager/internal/models"
)

// UserRepository is the credential store. Lookups return
// gorm.ErrRecordNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// SkillFilter narrows a skill listing; empty fields match everything and
// set fields combine with AND semantics.
type SkillFilter struct {
	Category string
	Level    string
}

// Skill sort orders. Anything else falls back to SortNewest.
const (
	SortName     = "name"
	SortLevel    = "level"
	SortCategory = "category"
	SortNewest   = ""
)

type SkillRepository interface {
	List(ctx context.Context, filter SkillFilter, sort string) ([]models.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
}
