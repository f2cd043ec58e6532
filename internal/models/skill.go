package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Skill categories
const (
	CategoryFrontend = "Frontend"
	CategoryBackend  = "Backend"
	CategoryDatabase = "Database"
	CategoryCloud    = "Cloud"
	CategoryDevOps   = "DevOps"
)

type Skill struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name              string     `json:"name" gorm:"uniqueIndex;not null"`
	Level             string     `json:"level" gorm:"not null;index:idx_skills_category_level,priority:2"`
	Category          string     `json:"category" gorm:"not null;index:idx_skills_category_level,priority:1"`
	Description       string     `json:"description,omitempty"`
	YearsOfExperience *int       `json:"yearsOfExperience,omitempty"`
	CreatedBy         *uuid.UUID `json:"createdBy,omitempty" gorm:"type:uuid"` // admin who created the record
	UpdatedBy         *uuid.UUID `json:"updatedBy,omitempty" gorm:"type:uuid"`
	CreatedAt         time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func ValidSkillLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func ValidSkillCategory(category string) bool {
	switch category {
	case CategoryFrontend, CategoryBackend, CategoryDatabase, CategoryCloud, CategoryDevOps:
		return true
	}
	return false
}
