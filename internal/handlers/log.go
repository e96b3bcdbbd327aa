package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/devtrack-api/internal/dto"
	"github.com/yukikurage/devtrack-api/internal/models"
	"github.com/yukikurage/devtrack-api/internal/services"
)

type LogHandler struct {
	logService *services.LogService
}

func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

// ListLogs returns the current user's logs, filtered by date, project and limit
func (h *LogHandler) ListLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	logs, err := h.logService.List(c.Request.Context(), userID, services.LogQueryParams{
		Date:    c.Query("date"),
		Project: c.Query("project"),
		Limit:   c.Query("limit"),
	})
	if err != nil {
		respondEntityError(c, err, "Failed to fetch logs")
		return
	}

	c.JSON(http.StatusOK, dto.ToLogDTOs(logs))
}

func (h *LogHandler) GetLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	log, err := h.logService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondEntityError(c, err, "Failed to fetch log")
		return
	}

	c.JSON(http.StatusOK, dto.ToLogDTO(*log))
}

func (h *LogHandler) CreateLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.LogRequest
	if !bindJSON(c, &req) {
		return
	}

	log, err := h.logService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondEntityError(c, err, "Failed to create log")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLogDTO(*log))
}

// ReplaceLog handles PUT: every mutable field comes from the body
func (h *LogHandler) ReplaceLog(c *gin.Context) {
	h.update(c, h.logService.Replace)
}

// PatchLog handles PATCH: only the fields in the body change
func (h *LogHandler) PatchLog(c *gin.Context) {
	h.update(c, h.logService.Patch)
}

func (h *LogHandler) update(c *gin.Context, apply func(ctx context.Context, userID, id string, req dto.LogRequest) (*models.Log, error)) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.LogRequest
	if !bindJSON(c, &req) {
		return
	}

	log, err := apply(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondEntityError(c, err, "Failed to update log")
		return
	}

	c.JSON(http.StatusOK, dto.ToLogDTO(*log))
}

func (h *LogHandler) DeleteLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.logService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondEntityError(c, err, "Failed to delete log")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Log deleted successfully"})
}
