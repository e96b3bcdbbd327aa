package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/devtrack-api/internal/dto"
	"github.com/yukikurage/devtrack-api/internal/models"
	"github.com/yukikurage/devtrack-api/internal/repository"
	"github.com/yukikurage/devtrack-api/internal/utils"
)

var ErrSkillNotFound = errors.New("skill not found")

// SkillService handles skill business logic. Every write refreshes LastUpdated.
type SkillService struct {
	skillRepo repository.SkillRepository
	now       func() time.Time
}

func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
		now:       time.Now,
	}
}

func (s *SkillService) List(ctx context.Context, userID string) ([]models.Skill, error) {
	skills, err := s.skillRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

func (s *SkillService) Get(ctx context.Context, userID, id string) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) Create(ctx context.Context, userID string, req dto.SkillRequest) (*models.Skill, error) {
	now := s.now().UTC()
	skill := &models.Skill{
		ID:        utils.NewID(),
		UserID:    userID,
		CreatedAt: now,
	}
	resetSkill(skill)
	applySkillRequest(skill, req)
	skill.LastUpdated = now

	if err := skill.Validate(); err != nil {
		return nil, err
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

func (s *SkillService) Replace(ctx context.Context, userID, id string, req dto.SkillRequest) (*models.Skill, error) {
	skill, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	resetSkill(skill)
	applySkillRequest(skill, req)
	return s.write(ctx, skill, models.SkillMutableFields)
}

func (s *SkillService) Patch(ctx context.Context, userID, id string, req dto.SkillRequest) (*models.Skill, error) {
	skill, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	fields := applySkillRequest(skill, req)
	return s.write(ctx, skill, append(fields, models.SkillFieldLastUpdated))
}

func (s *SkillService) Delete(ctx context.Context, userID, id string) error {
	if err := s.skillRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

func (s *SkillService) write(ctx context.Context, skill *models.Skill, fields []string) (*models.Skill, error) {
	skill.LastUpdated = s.now().UTC()
	if err := skill.Validate(); err != nil {
		return nil, err
	}
	if err := s.skillRepo.Update(ctx, skill, fields...); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

func resetSkill(skill *models.Skill) {
	skill.Name = ""
	skill.Level = 0
	skill.Category = models.SkillCategoryOther
}

func applySkillRequest(skill *models.Skill, req dto.SkillRequest) []string {
	var fields []string

	if req.Name.Set {
		skill.Name = req.Name.Value
		fields = append(fields, models.SkillFieldName)
	}
	if req.Level.Set {
		skill.Level = req.Level.Value
		fields = append(fields, models.SkillFieldLevel)
	}
	if req.Category.Set {
		skill.Category = models.SkillCategoryOther
		if req.Category.Present() && req.Category.Value != "" {
			skill.Category = models.SkillCategory(req.Category.Value)
		}
		fields = append(fields, models.SkillFieldCategory)
	}

	return fields
}
