package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/devtrack-api/internal/dto"
	"github.com/yukikurage/devtrack-api/internal/models"
	"github.com/yukikurage/devtrack-api/internal/repository"
	"github.com/yukikurage/devtrack-api/internal/testsupport"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var req T
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

// ServiceTestSuite runs the entity services against in-memory SQLite
type ServiceTestSuite struct {
	suite.Suite
	repos    repository.Repositories
	logs     *LogService
	projects *ProjectService
	skills   *SkillService
	stats    *StatsService
	ctx      context.Context
}

func (suite *ServiceTestSuite) SetupTest() {
	suite.repos = repository.NewGormRepositories(testsupport.OpenSQLite(suite.T()))
	suite.ctx = context.Background()

	clock := func() time.Time { return fixedNow }
	suite.logs = NewLogService(suite.repos.Logs, time.UTC)
	suite.logs.now = clock
	suite.projects = NewProjectService(suite.repos.Projects, time.UTC)
	suite.projects.now = clock
	suite.skills = NewSkillService(suite.repos.Skills)
	suite.skills.now = clock
	suite.stats = NewStatsService(suite.repos)
}

func (suite *ServiceTestSuite) createLog(userID, body string) *models.Log {
	log, err := suite.logs.Create(suite.ctx, userID, decode[dto.LogRequest](suite.T(), body))
	suite.Require().NoError(err)
	return log
}

func (suite *ServiceTestSuite) createProject(userID, body string) *models.Project {
	project, err := suite.projects.Create(suite.ctx, userID, decode[dto.ProjectRequest](suite.T(), body))
	suite.Require().NoError(err)
	return project
}

func (suite *ServiceTestSuite) requireValidationField(err error, field string) {
	var verr *models.ValidationError
	suite.Require().True(errors.As(err, &verr), "expected ValidationError, got %v", err)
	suite.Equal(field, verr.Field)
}

func (suite *ServiceTestSuite) TestLogCreate_Defaults() {
	log := suite.createLog("alice", `{"hours": 2, "description": "fix bug"}`)

	suite.NotEmpty(log.ID)
	suite.Equal("alice", log.UserID)
	suite.True(log.Date.Equal(fixedNow))
	suite.Equal(models.MoodProductive, log.Mood)
	suite.Equal([]string{}, log.Tags)
	suite.Nil(log.ProjectID)
	suite.Nil(log.Project)
}

func (suite *ServiceTestSuite) TestLogCreate_Hours() {
	log := suite.createLog("alice", `{"hours": "2.5", "description": "string hours"}`)
	suite.Equal(2.5, log.Hours)

	log = suite.createLog("alice", `{"hours": "abc", "description": "malformed hours"}`)
	suite.Equal(float64(0), log.Hours)

	stored, err := suite.logs.Get(suite.ctx, "alice", log.ID)
	suite.Require().NoError(err)
	suite.Equal(float64(0), stored.Hours)

	_, err = suite.logs.Create(suite.ctx, "alice", decode[dto.LogRequest](suite.T(), `{"hours": 0.25, "description": "too short"}`))
	suite.requireValidationField(err, "hours")

	_, err = suite.logs.Create(suite.ctx, "alice", decode[dto.LogRequest](suite.T(), `{"hours": 25, "description": "too long"}`))
	suite.requireValidationField(err, "hours")
}

func (suite *ServiceTestSuite) TestLogCreate_ValidationFailures() {
	cases := map[string]string{
		`{"hours": 1}`:                                      "description",
		`{"hours": 1, "description": "x", "mood": "sleepy"}`: "mood",
		`{"hours": 1, "description": "x", "date": "soon"}`:   "date",
	}
	for body, field := range cases {
		_, err := suite.logs.Create(suite.ctx, "alice", decode[dto.LogRequest](suite.T(), body))
		suite.requireValidationField(err, field)
	}
}

func (suite *ServiceTestSuite) TestLogCreate_ProjectReference() {
	project := suite.createProject("alice", `{"name": "devtrack"}`)

	log := suite.createLog("alice", `{"hours": 1, "description": "empty project", "project": ""}`)
	suite.Nil(log.ProjectID)

	log = suite.createLog("alice", `{"hours": 1, "description": "null project", "project": null}`)
	suite.Nil(log.ProjectID)

	log = suite.createLog("alice", `{"hours": 1, "description": "joined", "project": "`+project.ID+`"}`)
	suite.Require().NotNil(log.Project)
	suite.Equal("devtrack", log.Project.Name)

	// advisory reference: unknown ids are stored but never resolved
	log = suite.createLog("alice", `{"hours": 1, "description": "dangling", "project": "missing"}`)
	suite.Require().NotNil(log.ProjectID)
	suite.Equal("missing", *log.ProjectID)
	suite.Nil(log.Project)
}

func (suite *ServiceTestSuite) TestLogList() {
	suite.createLog("alice", `{"hours": 1, "description": "first", "date": "2024-06-01T09:00:00Z"}`)
	suite.createLog("alice", `{"hours": 1, "description": "second", "date": "2024-06-01T18:00:00Z"}`)
	suite.createLog("alice", `{"hours": 1, "description": "next day", "date": "2024-06-02T00:00:00Z"}`)
	suite.createLog("bob", `{"hours": 1, "description": "bob", "date": "2024-06-01T10:00:00Z"}`)

	logs, err := suite.logs.List(suite.ctx, "alice", LogQueryParams{Date: "2024-06-01"})
	suite.Require().NoError(err)
	suite.Require().Len(logs, 2)
	suite.Equal("second", logs[0].Description)
	suite.Equal("first", logs[1].Description)

	logs, err = suite.logs.List(suite.ctx, "alice", LogQueryParams{Limit: "1"})
	suite.Require().NoError(err)
	suite.Require().Len(logs, 1)
	suite.Equal("next day", logs[0].Description)

	_, err = suite.logs.List(suite.ctx, "alice", LogQueryParams{Date: "yesterday"})
	suite.ErrorIs(err, ErrInvalidDate)
}

func (suite *ServiceTestSuite) TestLogPatch_OnlyPresentFields() {
	log := suite.createLog("alice", `{"hours": 3, "description": "before", "tags": ["go"], "mood": "focused"}`)

	patched, err := suite.logs.Patch(suite.ctx, "alice", log.ID, decode[dto.LogRequest](suite.T(), `{"description": "after"}`))
	suite.Require().NoError(err)
	suite.Equal("after", patched.Description)

	stored, err := suite.logs.Get(suite.ctx, "alice", log.ID)
	suite.Require().NoError(err)
	suite.Equal("after", stored.Description)
	suite.Equal(float64(3), stored.Hours)
	suite.Equal([]string{"go"}, stored.Tags)
	suite.Equal(models.MoodFocused, stored.Mood)

	_, err = suite.logs.Patch(suite.ctx, "alice", log.ID, decode[dto.LogRequest](suite.T(), `{"hours": 30}`))
	suite.requireValidationField(err, "hours")

	_, err = suite.logs.Patch(suite.ctx, "bob", log.ID, decode[dto.LogRequest](suite.T(), `{"description": "mine"}`))
	suite.ErrorIs(err, ErrLogNotFound)
}

func (suite *ServiceTestSuite) TestLogReplace_ResetsAbsentFields() {
	log := suite.createLog("alice", `{"hours": 3, "description": "before", "tags": ["go"], "mood": "focused", "date": "2024-05-01"}`)

	replaced, err := suite.logs.Replace(suite.ctx, "alice", log.ID, decode[dto.LogRequest](suite.T(), `{"hours": 1, "description": "after"}`))
	suite.Require().NoError(err)
	suite.Equal([]string{}, replaced.Tags)
	suite.Equal(models.MoodProductive, replaced.Mood)

	stored, err := suite.logs.Get(suite.ctx, "alice", log.ID)
	suite.Require().NoError(err)
	suite.Equal("after", stored.Description)
	suite.Empty(stored.Tags)
	suite.True(stored.Date.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))

	_, err = suite.logs.Replace(suite.ctx, "alice", log.ID, decode[dto.LogRequest](suite.T(), `{"hours": 1}`))
	suite.requireValidationField(err, "description")
}

func (suite *ServiceTestSuite) TestLogDelete() {
	log := suite.createLog("alice", `{"hours": 1, "description": "bye"}`)

	suite.ErrorIs(suite.logs.Delete(suite.ctx, "bob", log.ID), ErrLogNotFound)
	suite.NoError(suite.logs.Delete(suite.ctx, "alice", log.ID))
	suite.ErrorIs(suite.logs.Delete(suite.ctx, "alice", log.ID), ErrLogNotFound)

	_, err := suite.logs.Get(suite.ctx, "alice", log.ID)
	suite.ErrorIs(err, ErrLogNotFound)
}

func (suite *ServiceTestSuite) TestProjectLifecycle() {
	project := suite.createProject("alice", `{"name": "devtrack", "techStack": ["go", "gin"], "estimatedHours": 40}`)
	suite.Equal(models.ProjectStatusPlanning, project.Status)
	suite.True(project.StartDate.Equal(fixedNow))

	_, err := suite.projects.Create(suite.ctx, "alice", decode[dto.ProjectRequest](suite.T(), `{"name": "x", "status": "archived"}`))
	suite.requireValidationField(err, "status")

	patched, err := suite.projects.Patch(suite.ctx, "alice", project.ID, decode[dto.ProjectRequest](suite.T(), `{"status": "in-progress", "actualHours": 12.5}`))
	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusInProgress, patched.Status)

	stored, err := suite.projects.Get(suite.ctx, "alice", project.ID)
	suite.Require().NoError(err)
	suite.Equal([]string{"go", "gin"}, stored.TechStack)
	suite.Equal(float64(40), stored.EstimatedHours)
	suite.Equal(12.5, stored.ActualHours)

	replaced, err := suite.projects.Replace(suite.ctx, "alice", project.ID, decode[dto.ProjectRequest](suite.T(), `{"name": "renamed"}`))
	suite.Require().NoError(err)
	suite.Equal(models.ProjectStatusPlanning, replaced.Status)
	suite.Equal(float64(0), replaced.EstimatedHours)
	suite.True(replaced.StartDate.Equal(fixedNow))

	_, err = suite.projects.Get(suite.ctx, "bob", project.ID)
	suite.ErrorIs(err, ErrProjectNotFound)

	suite.NoError(suite.projects.Delete(suite.ctx, "alice", project.ID))
	suite.ErrorIs(suite.projects.Delete(suite.ctx, "alice", project.ID), ErrProjectNotFound)
}

func (suite *ServiceTestSuite) TestSkillLifecycle() {
	skill, err := suite.skills.Create(suite.ctx, "alice", decode[dto.SkillRequest](suite.T(), `{"name": "Go", "level": 5}`))
	suite.Require().NoError(err)
	suite.Equal(models.SkillCategoryOther, skill.Category)
	suite.True(skill.LastUpdated.Equal(fixedNow))

	for _, body := range []string{`{"name": "Go", "level": 11}`, `{"name": "Go", "level": -1}`, `{"name": "Go"}`} {
		_, err = suite.skills.Create(suite.ctx, "alice", decode[dto.SkillRequest](suite.T(), body))
		suite.requireValidationField(err, "level")
	}

	later := fixedNow.Add(time.Hour)
	suite.skills.now = func() time.Time { return later }

	patched, err := suite.skills.Patch(suite.ctx, "alice", skill.ID, decode[dto.SkillRequest](suite.T(), `{"level": 7}`))
	suite.Require().NoError(err)
	suite.Equal(7, patched.Level)
	suite.Equal("Go", patched.Name)

	stored, err := suite.skills.Get(suite.ctx, "alice", skill.ID)
	suite.Require().NoError(err)
	suite.Equal(7, stored.Level)
	suite.True(stored.LastUpdated.Equal(later))

	_, err = suite.skills.Replace(suite.ctx, "alice", skill.ID, decode[dto.SkillRequest](suite.T(), `{"name": "Go", "level": 8, "category": "backend"}`))
	suite.Require().NoError(err)

	patched, err = suite.skills.Patch(suite.ctx, "alice", skill.ID, dto.SkillRequest{Category: dto.Some("devops")})
	suite.Require().NoError(err)
	suite.Equal(models.SkillCategoryDevOps, patched.Category)
	suite.Equal(8, patched.Level)

	_, err = suite.skills.Patch(suite.ctx, "bob", skill.ID, decode[dto.SkillRequest](suite.T(), `{"level": 1}`))
	suite.ErrorIs(err, ErrSkillNotFound)

	suite.NoError(suite.skills.Delete(suite.ctx, "alice", skill.ID))
	suite.ErrorIs(suite.skills.Delete(suite.ctx, "alice", skill.ID), ErrSkillNotFound)
}

func (suite *ServiceTestSuite) TestStatsSummary() {
	suite.createLog("alice", `{"hours": 1.5, "description": "a"}`)
	suite.createLog("alice", `{"hours": 2.25, "description": "b"}`)
	suite.createLog("bob", `{"hours": 8, "description": "not counted"}`)
	suite.createProject("alice", `{"name": "one", "status": "in-progress"}`)
	suite.createProject("alice", `{"name": "two", "status": "completed"}`)
	suite.createProject("alice", `{"name": "three"}`)
	for _, level := range []string{"3", "4", "4"} {
		_, err := suite.skills.Create(suite.ctx, "alice", decode[dto.SkillRequest](suite.T(), `{"name": "s", "level": `+level+`}`))
		suite.Require().NoError(err)
	}

	summary, err := suite.stats.Summary(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.Equal(&Summary{
		TotalHours:        3.8,
		LogCount:          2,
		ProjectCount:      3,
		ActiveProjects:    1,
		CompletedProjects: 1,
		SkillCount:        3,
		AverageSkillLevel: 3.7,
	}, summary)

	empty, err := suite.stats.Summary(suite.ctx, "carol")
	suite.Require().NoError(err)
	suite.Equal(&Summary{}, empty)
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
