package repository

import (
	"context"

	"github.com/yukikurage/devtrack-api/internal/database"
	"github.com/yukikurage/devtrack-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return translateGormError(r.db.WithContext(ctx).Create(project).Error)
}

func (r *GormProjectRepository) FindByID(ctx context.Context, userID, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &project, nil
}

// List returns every project owned by userID in creation order
func (r *GormProjectRepository) List(ctx context.Context, userID string) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Order("created_at ASC").Order("id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *GormProjectRepository) Update(ctx context.Context, project *models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = models.ProjectMutableFields
	}
	return translateGormError(r.db.WithContext(ctx).
		Model(project).
		Where("user_id = ?", project.UserID).
		Select(fields).
		Updates(project).Error)
}

// Delete removes a project owned by userID. Logs referencing it are left untouched.
func (r *GormProjectRepository) Delete(ctx context.Context, userID, id string) error {
	return deleteOwned(r.db.WithContext(ctx), &models.Project{}, userID, id)
}
