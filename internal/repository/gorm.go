package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// NewGormRepositories returns the GORM implementations backed by db.
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    NewUserRepository(db),
		Logs:     NewLogRepository(db),
		Projects: NewProjectRepository(db),
		Skills:   NewSkillRepository(db),
	}
}

func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

// deleteOwned deletes the row of model with id owned by userID.
func deleteOwned(db *gorm.DB, model any, userID, id string) error {
	result := db.Where("user_id = ? AND id = ?", userID, id).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
