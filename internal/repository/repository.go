package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yukikurage/devtrack-api/internal/models"
)

var (
	// ErrNotFound is returned when an owner-filtered lookup matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("record already exists")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by normalized email
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// LogFilter holds the owner-scoped conditions for listing logs
type LogFilter struct {
	UserID    string
	DateFrom  *time.Time // inclusive
	DateTo    *time.Time // exclusive
	ProjectID string
	Limit     int // <= 0 means no limit
}

// LogRepository defines the interface for log data access.
// Returned logs have their Project resolved when it belongs to the same user.
type LogRepository interface {
	// Create inserts a new log
	Create(ctx context.Context, log *models.Log) error

	// FindByID finds a log owned by userID
	FindByID(ctx context.Context, userID, id string) (*models.Log, error)

	// List returns logs matching the filter, newest date first
	List(ctx context.Context, filter LogFilter) ([]models.Log, error)

	// Update writes the named fields of an owned log, or every mutable field when none are named
	Update(ctx context.Context, log *models.Log, fields ...string) error

	// Delete removes a log owned by userID
	Delete(ctx context.Context, userID, id string) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, userID, id string) (*models.Project, error)
	List(ctx context.Context, userID string) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project, fields ...string) error
	Delete(ctx context.Context, userID, id string) error
}

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	FindByID(ctx context.Context, userID, id string) (*models.Skill, error)
	List(ctx context.Context, userID string) ([]models.Skill, error)
	Update(ctx context.Context, skill *models.Skill, fields ...string) error
	Delete(ctx context.Context, userID, id string) error
}

// Repositories groups the repositories of one storage backend.
type Repositories struct {
	Users    UserRepository
	Logs     LogRepository
	Projects ProjectRepository
	Skills   SkillRepository
}
