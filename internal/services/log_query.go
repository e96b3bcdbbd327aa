package services

import (
	"errors"
	"strings"
	"time"

	"github.com/yukikurage/devtrack-api/internal/repository"
	"github.com/yukikurage/devtrack-api/internal/utils"
)

var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// LogQueryParams holds the raw query string values of a log listing request.
type LogQueryParams struct {
	Date    string
	Project string
	Limit   string
}

// BuildLogFilter turns listing parameters into a filter scoped to userID.
//
// A date selects the calendar day [00:00, next day 00:00) in loc, where the day comes from
// either a YYYY-MM-DD value or the local date of an RFC 3339 timestamp.
func BuildLogFilter(userID string, params LogQueryParams, loc *time.Location) (repository.LogFilter, error) {
	filter := repository.LogFilter{
		UserID:    userID,
		ProjectID: strings.TrimSpace(params.Project),
		Limit:     utils.ParseLimit(params.Limit),
	}

	if raw := strings.TrimSpace(params.Date); raw != "" {
		day, err := parseTimestamp(raw, loc)
		if err != nil {
			return repository.LogFilter{}, ErrInvalidDate
		}
		day = day.In(loc)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc).UTC()
		end := time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, loc).UTC()
		filter.DateFrom = &start
		filter.DateTo = &end
	}

	return filter, nil
}

// parseTimestamp accepts a bare calendar date in loc or an RFC 3339 timestamp.
func parseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, raw)
}
