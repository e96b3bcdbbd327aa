package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLog() *Log {
	return &Log{
		UserID:      "user-1",
		Date:        time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Hours:       2,
		Description: "fix bug",
		Mood:        MoodProductive,
	}
}

func TestLogValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *Log)
		field  string
	}{
		{"valid", func(l *Log) {}, ""},
		{"lower bound", func(l *Log) { l.Hours = 0.5 }, ""},
		{"upper bound", func(l *Log) { l.Hours = 24 }, ""},
		{"below range", func(l *Log) { l.Hours = 0.25 }, "hours"},
		{"above range", func(l *Log) { l.Hours = 24.5 }, "hours"},
		{"coerced zero", func(l *Log) { l.Hours = 0; l.HoursUnchecked = true }, ""},
		{"blank description", func(l *Log) { l.Description = "   " }, "description"},
		{"unknown mood", func(l *Log) { l.Mood = "sleepy" }, "mood"},
		{"empty project reference", func(l *Log) { empty := ""; l.ProjectID = &empty }, "project"},
		{"missing owner", func(l *Log) { l.UserID = "" }, "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLog()
			tt.mutate(l)
			err := l.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSkillValidate_LevelBounds(t *testing.T) {
	for level, ok := range map[int]bool{-1: false, 0: false, 1: true, 5: true, 10: true, 11: false} {
		s := &Skill{UserID: "user-1", Name: "Go", Level: level, Category: SkillCategoryBackend}
		if ok {
			assert.NoError(t, s.Validate(), "level %d", level)
		} else {
			assert.Error(t, s.Validate(), "level %d", level)
		}
	}
}

func TestProjectValidate(t *testing.T) {
	p := &Project{UserID: "user-1", Name: "devtrack", Status: ProjectStatusInProgress}
	assert.NoError(t, p.Validate())

	p.Status = "archived"
	assert.EqualError(t, p.Validate(), "status must be one of planning, in-progress, completed, paused")

	p.Status = ProjectStatusPaused
	p.Name = ""
	assert.EqualError(t, p.Validate(), "name is required")
}
