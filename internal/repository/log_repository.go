package repository

import (
	"context"

	"github.com/yukikurage/devtrack-api/internal/database"
	"github.com/yukikurage/devtrack-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLogRepository is a GORM implementation of LogRepository
type GormLogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &GormLogRepository{db: db}
}

// Create inserts a new log without touching the referenced project
func (r *GormLogRepository) Create(ctx context.Context, log *models.Log) error {
	return translateGormError(r.db.WithContext(ctx).Omit(clause.Associations).Create(log).Error)
}

// FindByID finds a log owned by userID with its project resolved
func (r *GormLogRepository) FindByID(ctx context.Context, userID, id string) (*models.Log, error) {
	var log models.Log
	err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(userID)).
		Preload("Project", "user_id = ?", userID).
		Where("id = ?", id).
		First(&log).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return &log, nil
}

// List retrieves logs matching the filter, newest date first
func (r *GormLogRepository) List(ctx context.Context, filter LogFilter) ([]models.Log, error) {
	query := r.db.WithContext(ctx).Scopes(database.OwnedBy(filter.UserID))

	if filter.DateFrom != nil {
		query = query.Where("date >= ?", filter.DateFrom.UTC())
	}
	if filter.DateTo != nil {
		query = query.Where("date < ?", filter.DateTo.UTC())
	}
	if filter.ProjectID != "" {
		query = query.Where("project_id = ?", filter.ProjectID)
	}

	logs := []models.Log{}
	err := query.
		Scopes(database.NewestFirst(), database.Limit(filter.Limit)).
		Preload("Project", "user_id = ?", filter.UserID).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// Update writes the named columns of a log owned by log.UserID
func (r *GormLogRepository) Update(ctx context.Context, log *models.Log, fields ...string) error {
	if len(fields) == 0 {
		fields = models.LogMutableFields
	}
	return translateGormError(r.db.WithContext(ctx).
		Model(log).
		Where("user_id = ?", log.UserID).
		Select(fields).
		Updates(log).Error)
}

// Delete removes a log owned by userID
func (r *GormLogRepository) Delete(ctx context.Context, userID, id string) error {
	return deleteOwned(r.db.WithContext(ctx), &models.Log{}, userID, id)
}
