package services

import (
	"context"
	"fmt"
	"math"

	"github.com/yukikurage/devtrack-api/internal/models"
	"github.com/yukikurage/devtrack-api/internal/repository"
)

// Summary aggregates a user's activity for the dashboard.
type Summary struct {
	TotalHours        float64 `json:"totalHours"`
	LogCount          int     `json:"logCount"`
	ProjectCount      int     `json:"projectCount"`
	ActiveProjects    int     `json:"activeProjects"`
	CompletedProjects int     `json:"completedProjects"`
	SkillCount        int     `json:"skillCount"`
	AverageSkillLevel float64 `json:"averageSkillLevel"`
}

// StatsService computes per-user summaries from the entity repositories.
type StatsService struct {
	logRepo     repository.LogRepository
	projectRepo repository.ProjectRepository
	skillRepo   repository.SkillRepository
}

func NewStatsService(repos repository.Repositories) *StatsService {
	return &StatsService{
		logRepo:     repos.Logs,
		projectRepo: repos.Projects,
		skillRepo:   repos.Skills,
	}
}

// Summary returns the totals for one user.
func (s *StatsService) Summary(ctx context.Context, userID string) (*Summary, error) {
	logs, err := s.logRepo.List(ctx, repository.LogFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	projects, err := s.projectRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	skills, err := s.skillRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	summary := &Summary{
		LogCount:     len(logs),
		ProjectCount: len(projects),
		SkillCount:   len(skills),
	}

	for _, log := range logs {
		summary.TotalHours += log.Hours
	}
	summary.TotalHours = roundTenth(summary.TotalHours)

	for _, project := range projects {
		switch project.Status {
		case models.ProjectStatusInProgress:
			summary.ActiveProjects++
		case models.ProjectStatusCompleted:
			summary.CompletedProjects++
		}
	}

	if len(skills) > 0 {
		total := 0
		for _, skill := range skills {
			total += skill.Level
		}
		summary.AverageSkillLevel = roundTenth(float64(total) / float64(len(skills)))
	}

	return summary, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
