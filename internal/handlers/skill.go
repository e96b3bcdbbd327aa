package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/devtrack-api/internal/dto"
	"github.com/yukikurage/devtrack-api/internal/models"
	"github.com/yukikurage/devtrack-api/internal/services"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skills, err := h.skillService.List(c.Request.Context(), userID)
	if err != nil {
		respondEntityError(c, err, "Failed to fetch skills")
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillDTOs(skills))
}

func (h *SkillHandler) GetSkill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skill, err := h.skillService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondEntityError(c, err, "Failed to fetch skill")
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillDTO(*skill))
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.SkillRequest
	if !bindJSON(c, &req) {
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondEntityError(c, err, "Failed to create skill")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSkillDTO(*skill))
}

func (h *SkillHandler) ReplaceSkill(c *gin.Context) {
	h.update(c, h.skillService.Replace)
}

func (h *SkillHandler) PatchSkill(c *gin.Context) {
	h.update(c, h.skillService.Patch)
}

func (h *SkillHandler) update(c *gin.Context, apply func(ctx context.Context, userID, id string, req dto.SkillRequest) (*models.Skill, error)) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.SkillRequest
	if !bindJSON(c, &req) {
		return
	}

	skill, err := apply(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondEntityError(c, err, "Failed to update skill")
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillDTO(*skill))
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.skillService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondEntityError(c, err, "Failed to delete skill")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Skill deleted successfully"})
}
