package dto

import (
	"time"

	"github.com/yukikurage/devtrack-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID             string               `json:"_id"`
	User           string               `json:"user"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	TechStack      []string             `json:"techStack"`
	Status         models.ProjectStatus `json:"status"`
	StartDate      time.Time            `json:"startDate"`
	EstimatedHours float64              `json:"estimatedHours"`
	ActualHours    float64              `json:"actualHours"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// LogDTO represents a log in API responses. Project is the resolved project or null,
// ProjectID the stored reference even when it no longer resolves.
type LogDTO struct {
	ID          string      `json:"_id"`
	User        string      `json:"user"`
	Date        time.Time   `json:"date"`
	Hours       float64     `json:"hours"`
	Description string      `json:"description"`
	ProjectID   *string     `json:"projectId"`
	Project     *ProjectDTO `json:"project"`
	Tags        []string    `json:"tags"`
	Mood        models.Mood `json:"mood"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// SkillDTO represents a skill in API responses
type SkillDTO struct {
	ID          string               `json:"_id"`
	User        string               `json:"user"`
	Name        string               `json:"name"`
	Level       int                  `json:"level"`
	Category    models.SkillCategory `json:"category"`
	LastUpdated time.Time            `json:"lastUpdated"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// MessageResponse is returned by operations without a resource body
type MessageResponse struct {
	Message string `json:"message"`
}

// Conversion functions

func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:             project.ID,
		User:           project.UserID,
		Name:           project.Name,
		Description:    project.Description,
		TechStack:      nonNil(project.TechStack),
		Status:         project.Status,
		StartDate:      project.StartDate,
		EstimatedHours: project.EstimatedHours,
		ActualHours:    project.ActualHours,
		CreatedAt:      project.CreatedAt,
	}
}

func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

func ToLogDTO(log models.Log) LogDTO {
	dto := LogDTO{
		ID:          log.ID,
		User:        log.UserID,
		Date:        log.Date,
		Hours:       log.Hours,
		Description: log.Description,
		ProjectID:   log.ProjectID,
		Tags:        nonNil(log.Tags),
		Mood:        log.Mood,
		CreatedAt:   log.CreatedAt,
	}
	if log.Project != nil {
		project := ToProjectDTO(*log.Project)
		dto.Project = &project
	}
	return dto
}

func ToLogDTOs(logs []models.Log) []LogDTO {
	dtos := make([]LogDTO, len(logs))
	for i, log := range logs {
		dtos[i] = ToLogDTO(log)
	}
	return dtos
}

func ToSkillDTO(skill models.Skill) SkillDTO {
	return SkillDTO{
		ID:          skill.ID,
		User:        skill.UserID,
		Name:        skill.Name,
		Level:       skill.Level,
		Category:    skill.Category,
		LastUpdated: skill.LastUpdated,
		CreatedAt:   skill.CreatedAt,
	}
}

func ToSkillDTOs(skills []models.Skill) []SkillDTO {
	dtos := make([]SkillDTO, len(skills))
	for i, skill := range skills {
		dtos[i] = ToSkillDTO(skill)
	}
	return dtos
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
