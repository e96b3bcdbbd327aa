package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/devtrack-api/internal/errors"
	"github.com/yukikurage/devtrack-api/internal/middleware"
	"github.com/yukikurage/devtrack-api/internal/models"
	"github.com/yukikurage/devtrack-api/internal/services"
)

// bindJSON decodes the request body, answering 400 when it is not valid JSON.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}

// currentUserID returns the authenticated user, answering 401 when there is none.
func currentUserID(c *gin.Context) (string, bool) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return "", false
	}
	return session.UserID, true
}

// respondEntityError maps service errors of the entity handlers to HTTP.
// Unexpected errors are logged and answered with the fixed failure message.
func respondEntityError(c *gin.Context, err error, failure string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		apierrors.ValidationFailed(c, verr.Error(), verr)
	case errors.Is(err, services.ErrInvalidDate):
		apierrors.BadRequest(c, "Invalid date")
	case errors.Is(err, services.ErrLogNotFound):
		apierrors.NotFound(c, "Log not found")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrSkillNotFound):
		apierrors.NotFound(c, "Skill not found")
	default:
		logInternal(c, failure, err)
		apierrors.InternalError(c, failure)
	}
}

func logInternal(c *gin.Context, failure string, err error) {
	log.Printf("[err] id=%s %s: %v", middleware.GetRequestID(c.Request.Context()), failure, err)
}
