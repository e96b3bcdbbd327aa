package models

import (
	"strings"
	"time"

	"github.com/yukikurage/devtrack-api/internal/constants"
)

type Mood string

const (
	MoodProductive Mood = "productive"
	MoodStuck      Mood = "stuck"
	MoodExcited    Mood = "excited"
	MoodTired      Mood = "tired"
	MoodFocused    Mood = "focused"
)

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	switch m {
	case MoodProductive, MoodStuck, MoodExcited, MoodTired, MoodFocused:
		return true
	}
	return false
}

// Log is a single recorded coding session.
type Log struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" bson:"_id" json:"_id"`
	UserID      string    `gorm:"type:varchar(36);not null;index:idx_logs_user_date,priority:1" bson:"user_id" json:"user"`
	Date        time.Time `gorm:"not null;index:idx_logs_user_date,priority:2" bson:"date" json:"date"`
	Hours       float64   `gorm:"not null" bson:"hours" json:"hours"`
	Description string    `gorm:"type:text;not null" bson:"description" json:"description"`
	ProjectID   *string   `gorm:"type:varchar(36);index" bson:"project_id,omitempty" json:"projectId,omitempty"`
	Tags        []string  `gorm:"serializer:json;type:text" bson:"tags" json:"tags"`
	Mood        Mood      `gorm:"type:varchar(20);not null" bson:"mood" json:"mood"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`

	// HoursUnchecked skips the hours range check. It is set when the write did not carry a
	// parseable hours value, either because malformed input was coerced to 0 or because a
	// partial update left hours untouched.
	HoursUnchecked bool `gorm:"-" bson:"-" json:"-"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID" bson:"-" json:"project"`
}

// Log columns accepted by partial updates. Column and document field names are shared
// between the SQL and Mongo backends.
const (
	LogFieldDate        = "date"
	LogFieldHours       = "hours"
	LogFieldDescription = "description"
	LogFieldProject     = "project_id"
	LogFieldTags        = "tags"
	LogFieldMood        = "mood"
)

// LogMutableFields lists every field a full replace writes.
var LogMutableFields = []string{
	LogFieldDate, LogFieldHours, LogFieldDescription, LogFieldProject, LogFieldTags, LogFieldMood,
}

// Validate checks the log against its field constraints.
func (l *Log) Validate() error {
	if strings.TrimSpace(l.UserID) == "" {
		return NewValidationError("user", "is required")
	}
	if !l.HoursUnchecked && (l.Hours < constants.MinLogHours || l.Hours > constants.MaxLogHours) {
		return NewValidationError("hours", "must be between 0.5 and 24")
	}
	if strings.TrimSpace(l.Description) == "" {
		return NewValidationError("description", "is required")
	}
	if l.ProjectID != nil && *l.ProjectID == "" {
		return NewValidationError("project", "must not be empty")
	}
	if !l.Mood.Valid() {
		return NewValidationError("mood", "must be one of productive, stuck, excited, tired, focused")
	}
	if l.Date.IsZero() {
		return NewValidationError("date", "is required")
	}
	return nil
}
