package models

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusPaused     ProjectStatus = "paused"
)

// Valid reports whether s is one of the known project statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusPaused:
		return true
	}
	return false
}

type Project struct {
	ID             string        `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"_id"`
	UserID         string        `gorm:"type:varchar(36);not null;index" bson:"user_id" json:"user"`
	Name           string        `gorm:"type:varchar(255);not null" bson:"name" json:"name"`
	Description    string        `gorm:"type:text" bson:"description" json:"description"`
	TechStack      []string      `gorm:"serializer:json;type:text" bson:"tech_stack" json:"techStack"`
	Status         ProjectStatus `gorm:"type:varchar(20);not null" bson:"status" json:"status"`
	StartDate      time.Time     `bson:"start_date" json:"startDate"`
	EstimatedHours float64       `bson:"estimated_hours" json:"estimatedHours"`
	ActualHours    float64       `bson:"actual_hours" json:"actualHours"`
	CreatedAt      time.Time     `bson:"created_at" json:"createdAt"`
}

const (
	ProjectFieldName           = "name"
	ProjectFieldDescription    = "description"
	ProjectFieldTechStack      = "tech_stack"
	ProjectFieldStatus         = "status"
	ProjectFieldStartDate      = "start_date"
	ProjectFieldEstimatedHours = "estimated_hours"
	ProjectFieldActualHours    = "actual_hours"
)

var ProjectMutableFields = []string{
	ProjectFieldName, ProjectFieldDescription, ProjectFieldTechStack, ProjectFieldStatus,
	ProjectFieldStartDate, ProjectFieldEstimatedHours, ProjectFieldActualHours,
}

// Validate checks the project against its field constraints.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.UserID) == "" {
		return NewValidationError("user", "is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "is required")
	}
	if !p.Status.Valid() {
		return NewValidationError("status", "must be one of planning, in-progress, completed, paused")
	}
	return nil
}
