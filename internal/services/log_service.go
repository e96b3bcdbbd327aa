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

var ErrLogNotFound = errors.New("log not found")

// LogService handles log business logic
type LogService struct {
	logRepo repository.LogRepository
	loc     *time.Location
	now     func() time.Time
}

// NewLogService creates a new LogService. Calendar dates are interpreted in loc.
func NewLogService(logRepo repository.LogRepository, loc *time.Location) *LogService {
	if loc == nil {
		loc = time.UTC
	}
	return &LogService{
		logRepo: logRepo,
		loc:     loc,
		now:     time.Now,
	}
}

// List returns the user's logs matching the query parameters, newest first.
func (s *LogService) List(ctx context.Context, userID string, params LogQueryParams) ([]models.Log, error) {
	filter, err := BuildLogFilter(userID, params, s.loc)
	if err != nil {
		return nil, err
	}

	logs, err := s.logRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return logs, nil
}

// Get returns a single log owned by the user.
func (s *LogService) Get(ctx context.Context, userID, id string) (*models.Log, error) {
	log, err := s.logRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to find log: %w", err)
	}
	return log, nil
}

// Create stores a new log owned by the user. The owner always comes from userID.
func (s *LogService) Create(ctx context.Context, userID string, req dto.LogRequest) (*models.Log, error) {
	now := s.now().UTC()
	log := &models.Log{
		ID:        utils.NewID(),
		UserID:    userID,
		Date:      now,
		CreatedAt: now,
	}
	resetLog(log)
	if _, err := applyLogRequest(log, req, s.loc); err != nil {
		return nil, err
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}

	if err := s.logRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}

	return s.reload(ctx, log)
}

// Replace overwrites every mutable field of an owned log. A missing date keeps the stored one.
func (s *LogService) Replace(ctx context.Context, userID, id string, req dto.LogRequest) (*models.Log, error) {
	log, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	resetLog(log)
	if _, err := applyLogRequest(log, req, s.loc); err != nil {
		return nil, err
	}

	return s.write(ctx, log, models.LogMutableFields)
}

// Patch changes only the fields present in the request.
func (s *LogService) Patch(ctx context.Context, userID, id string, req dto.LogRequest) (*models.Log, error) {
	log, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	fields, err := applyLogRequest(log, req, s.loc)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return log, nil
	}

	return s.write(ctx, log, fields)
}

// Delete removes an owned log.
func (s *LogService) Delete(ctx context.Context, userID, id string) error {
	if err := s.logRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLogNotFound
		}
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return nil
}

func (s *LogService) write(ctx context.Context, log *models.Log, fields []string) (*models.Log, error) {
	if err := log.Validate(); err != nil {
		return nil, err
	}

	if err := s.logRepo.Update(ctx, log, fields...); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("failed to update log: %w", err)
	}

	return s.reload(ctx, log)
}

// reload reads the log back so the response carries the resolved project.
func (s *LogService) reload(ctx context.Context, log *models.Log) (*models.Log, error) {
	if log.ProjectID == nil {
		log.Project = nil
		return log, nil
	}
	stored, err := s.Get(ctx, log.UserID, log.ID)
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// resetLog puts every optional field back to its default, keeping identity and date.
func resetLog(log *models.Log) {
	log.Hours = 0
	log.HoursUnchecked = true
	log.Description = ""
	log.ProjectID = nil
	log.Project = nil
	log.Tags = []string{}
	log.Mood = models.MoodProductive
}

// applyLogRequest copies the fields present in req onto log and returns their column names.
func applyLogRequest(log *models.Log, req dto.LogRequest, loc *time.Location) ([]string, error) {
	var fields []string

	if req.Date.Present() && strings.TrimSpace(req.Date.Value) != "" {
		date, err := parseTimestamp(strings.TrimSpace(req.Date.Value), loc)
		if err != nil {
			return nil, models.NewValidationError("date", "must be a YYYY-MM-DD date or RFC 3339 timestamp")
		}
		log.Date = date.UTC()
		fields = append(fields, models.LogFieldDate)
	}

	log.HoursUnchecked = true
	if req.Hours.Set {
		log.Hours = req.Hours.Value
		log.HoursUnchecked = req.Hours.Coerced
		fields = append(fields, models.LogFieldHours)
	}

	if req.Description.Set {
		log.Description = req.Description.Value
		fields = append(fields, models.LogFieldDescription)
	}

	if req.Project.Set {
		log.ProjectID = nil
		log.Project = nil
		if id := strings.TrimSpace(req.Project.Value); req.Project.Present() && id != "" {
			log.ProjectID = &id
		}
		fields = append(fields, models.LogFieldProject)
	}

	if req.Tags.Set {
		log.Tags = req.Tags.Value
		if log.Tags == nil {
			log.Tags = []string{}
		}
		fields = append(fields, models.LogFieldTags)
	}

	if req.Mood.Set {
		log.Mood = models.MoodProductive
		if req.Mood.Present() && req.Mood.Value != "" {
			log.Mood = models.Mood(req.Mood.Value)
		}
		fields = append(fields, models.LogFieldMood)
	}

	return fields, nil
}
