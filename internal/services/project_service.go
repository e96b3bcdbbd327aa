package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/devtrack-api/internal/dto"
	"github.com/yukikurage/devtrack-api/internal/models"
	"github.com/yukikurage/devtrack-api/internal/repository"
	"github.com/yukikurage/devtrack-api/internal/utils"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	loc         *time.Location
	now         func() time.Time
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, loc *time.Location) *ProjectService {
	if loc == nil {
		loc = time.UTC
	}
	return &ProjectService{
		projectRepo: projectRepo,
		loc:         loc,
		now:         time.Now,
	}
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]models.Project, error) {
	projects, err := s.projectRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, userID, id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Create stores a new project owned by the user.
func (s *ProjectService) Create(ctx context.Context, userID string, req dto.ProjectRequest) (*models.Project, error) {
	now := s.now().UTC()
	project := &models.Project{
		ID:        utils.NewID(),
		UserID:    userID,
		StartDate: now,
		CreatedAt: now,
	}
	resetProject(project)
	if _, err := applyProjectRequest(project, req, s.loc); err != nil {
		return nil, err
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Replace overwrites every mutable field. A missing startDate keeps the stored one.
func (s *ProjectService) Replace(ctx context.Context, userID, id string, req dto.ProjectRequest) (*models.Project, error) {
	project, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	resetProject(project)
	if _, err := applyProjectRequest(project, req, s.loc); err != nil {
		return nil, err
	}
	return s.write(ctx, project, models.ProjectMutableFields)
}

// Patch changes only the fields present in the request.
func (s *ProjectService) Patch(ctx context.Context, userID, id string, req dto.ProjectRequest) (*models.Project, error) {
	project, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	fields, err := applyProjectRequest(project, req, s.loc)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return project, nil
	}
	return s.write(ctx, project, fields)
}

// Delete removes an owned project. Logs referencing it are left untouched.
func (s *ProjectService) Delete(ctx context.Context, userID, id string) error {
	if err := s.projectRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) write(ctx context.Context, project *models.Project, fields []string) (*models.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Update(ctx, project, fields...); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func resetProject(project *models.Project) {
	project.Name = ""
	project.Description = ""
	project.TechStack = []string{}
	project.Status = models.ProjectStatusPlanning
	project.EstimatedHours = 0
	project.ActualHours = 0
}

func applyProjectRequest(project *models.Project, req dto.ProjectRequest, loc *time.Location) ([]string, error) {
	var fields []string

	if req.Name.Set {
		project.Name = req.Name.Value
		fields = append(fields, models.ProjectFieldName)
	}
	if req.Description.Set {
		project.Description = req.Description.Value
		fields = append(fields, models.ProjectFieldDescription)
	}
	if req.TechStack.Set {
		project.TechStack = req.TechStack.Value
		if project.TechStack == nil {
			project.TechStack = []string{}
		}
		fields = append(fields, models.ProjectFieldTechStack)
	}
	if req.Status.Set {
		project.Status = models.ProjectStatusPlanning
		if req.Status.Present() && req.Status.Value != "" {
			project.Status = models.ProjectStatus(req.Status.Value)
		}
		fields = append(fields, models.ProjectFieldStatus)
	}
	if req.StartDate.Present() && strings.TrimSpace(req.StartDate.Value) != "" {
		start, err := parseTimestamp(strings.TrimSpace(req.StartDate.Value), loc)
		if err != nil {
			return nil, models.NewValidationError("startDate", "must be a YYYY-MM-DD date or RFC 3339 timestamp")
		}
		project.StartDate = start.UTC()
		fields = append(fields, models.ProjectFieldStartDate)
	}
	if req.EstimatedHours.Set {
		project.EstimatedHours = req.EstimatedHours.Value
		fields = append(fields, models.ProjectFieldEstimatedHours)
	}
	if req.ActualHours.Set {
		project.ActualHours = req.ActualHours.Value
		fields = append(fields, models.ProjectFieldActualHours)
	}

	return fields, nil
}
