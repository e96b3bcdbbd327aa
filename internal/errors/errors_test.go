package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		send   func(c *gin.Context)
		status int
		body   map[string]any
	}{
		{
			name:   "unauthorized default message",
			send:   func(c *gin.Context) { Unauthorized(c, "") },
			status: http.StatusUnauthorized,
			body:   map[string]any{"error": "Unauthorized", "code": ErrCodeUnauthorized},
		},
		{
			name:   "validation details",
			send:   func(c *gin.Context) { ValidationFailed(c, "hours must be between 0.5 and 24", map[string]string{"field": "hours"}) },
			status: http.StatusBadRequest,
			body: map[string]any{
				"error":   "hours must be between 0.5 and 24",
				"code":    ErrCodeValidationFailed,
				"details": map[string]any{"field": "hours"},
			},
		},
		{
			name:   "too many requests",
			send:   func(c *gin.Context) { TooManyRequests(c, "") },
			status: http.StatusTooManyRequests,
			body:   map[string]any{"error": "Too many requests", "code": ErrCodeTooManyRequests},
		},
		{
			name:   "internal error keeps the given message",
			send:   func(c *gin.Context) { InternalError(c, "Failed to fetch logs") },
			status: http.StatusInternalServerError,
			body:   map[string]any{"error": "Failed to fetch logs", "code": ErrCodeInternalError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.send(c)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.body, body)
		})
	}
}
