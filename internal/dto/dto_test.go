package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/devtrack-api/internal/models"
)

func TestLogRequest_Presence(t *testing.T) {
	var req LogRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description": "x", "project": null, "user": "mallory"}`), &req))

	assert.True(t, req.Description.Present())
	assert.Equal(t, "x", req.Description.Value)
	assert.True(t, req.Project.Set)
	assert.True(t, req.Project.Null)
	assert.False(t, req.Project.Present())
	assert.False(t, req.Mood.Set)
	assert.False(t, req.Hours.Set)
}

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		body    string
		value   float64
		coerced bool
	}{
		{`2.5`, 2.5, false},
		{`"3"`, 3, false},
		{`" 1.5 "`, 1.5, false},
		{`"abc"`, 0, true},
		{`null`, 0, true},
		{`true`, 0, true},
		{`"NaN"`, 0, true},
	}

	for _, tt := range tests {
		var f FlexFloat
		require.NoError(t, json.Unmarshal([]byte(tt.body), &f), tt.body)
		assert.True(t, f.Set, tt.body)
		assert.Equal(t, tt.value, f.Value, tt.body)
		assert.Equal(t, tt.coerced, f.Coerced, tt.body)
	}
}

func TestSkillRequest_RejectsWrongTypes(t *testing.T) {
	var req SkillRequest
	assert.Error(t, json.Unmarshal([]byte(`{"level": "high"}`), &req))
}

func TestToLogDTO(t *testing.T) {
	projectID := "p1"
	log := models.Log{ID: "l1", UserID: "alice", Hours: 2, ProjectID: &projectID}

	body, err := json.Marshal(ToLogDTO(log))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "l1", decoded["_id"])
	assert.Nil(t, decoded["project"])
	assert.Contains(t, decoded, "project")
	assert.Equal(t, "p1", decoded["projectId"])
	assert.Equal(t, []any{}, decoded["tags"])

	log.Project = &models.Project{ID: "p1", UserID: "alice", Name: "devtrack"}
	dto := ToLogDTO(log)
	require.NotNil(t, dto.Project)
	assert.Equal(t, "devtrack", dto.Project.Name)
	assert.Equal(t, []string{}, dto.Project.TechStack)
}
