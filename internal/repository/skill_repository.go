package repository

import (
	"context"

	"github.com/yukikurage/devtrack-api/internal/database"
	"github.com/yukikurage/devtrack-api/internal/models"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

func (r *GormSkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return translateGormError(r.db.WithContext(ctx).Create(skill).Error)
}

func (r *GormSkillRepository) FindByID(ctx context.Context, userID, id string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		First(&skill).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &skill, nil
}

func (r *GormSkillRepository) List(ctx context.Context, userID string) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Order("created_at ASC").Order("id ASC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *GormSkillRepository) Update(ctx context.Context, skill *models.Skill, fields ...string) error {
	if len(fields) == 0 {
		fields = models.SkillMutableFields
	}
	return translateGormError(r.db.WithContext(ctx).
		Model(skill).
		Where("user_id = ?", skill.UserID).
		Select(fields).
		Updates(skill).Error)
}

func (r *GormSkillRepository) Delete(ctx context.Context, userID, id string) error {
	return deleteOwned(r.db.WithContext(ctx), &models.Skill{}, userID, id)
}
