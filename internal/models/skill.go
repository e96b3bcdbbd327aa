package models

import (
	"strings"
	"time"

	"github.com/yukikurage/devtrack-api/internal/constants"
)

type SkillCategory string

const (
	SkillCategoryFrontend SkillCategory = "frontend"
	SkillCategoryBackend  SkillCategory = "backend"
	SkillCategoryDatabase SkillCategory = "database"
	SkillCategoryDevOps   SkillCategory = "devops"
	SkillCategoryOther    SkillCategory = "other"
)

// Valid reports whether c is one of the known skill categories.
func (c SkillCategory) Valid() bool {
	switch c {
	case SkillCategoryFrontend, SkillCategoryBackend, SkillCategoryDatabase, SkillCategoryDevOps, SkillCategoryOther:
		return true
	}
	return false
}

type Skill struct {
	ID          string        `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"_id"`
	UserID      string        `gorm:"type:varchar(36);not null;index" bson:"user_id" json:"user"`
	Name        string        `gorm:"type:varchar(255);not null" bson:"name" json:"name"`
	Level       int           `gorm:"not null" bson:"level" json:"level"`
	Category    SkillCategory `gorm:"type:varchar(20);not null" bson:"category" json:"category"`
	LastUpdated time.Time     `bson:"last_updated" json:"lastUpdated"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
}

const (
	SkillFieldName        = "name"
	SkillFieldLevel       = "level"
	SkillFieldCategory    = "category"
	SkillFieldLastUpdated = "last_updated"
)

var SkillMutableFields = []string{
	SkillFieldName, SkillFieldLevel, SkillFieldCategory, SkillFieldLastUpdated,
}

// Validate checks the skill against its field constraints.
func (s *Skill) Validate() error {
	if strings.TrimSpace(s.UserID) == "" {
		return NewValidationError("user", "is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name", "is required")
	}
	if s.Level < constants.MinSkillLevel || s.Level > constants.MaxSkillLevel {
		return NewValidationError("level", "must be between 1 and 10")
	}
	if !s.Category.Valid() {
		return NewValidationError("category", "must be one of frontend, backend, database, devops, other")
	}
	return nil
}
