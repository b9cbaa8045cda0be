package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lumenlaw/intake-backend/internal/intake/assertion"
	"github.com/lumenlaw/intake-backend/internal/services"
)

type IntakeHandler struct {
	intakeService services.IntakeService
	promptService services.ChatPromptService
}

func NewIntakeHandler(intakeService services.IntakeService, promptService services.ChatPromptService) *IntakeHandler {
	return &IntakeHandler{intakeService: intakeService, promptService: promptService}
}

func (ih *IntakeHandler) Create(c *gin.Context) {
	var body struct {
		IntakeType string         `json:"intake_type" binding:"required"`
		Seed       map[string]any `json:"seed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	intake, err := ih.intakeService.BeginIntake(c.Request.Context(), body.IntakeType, body.Seed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"intake": intake})
}

func (ih *IntakeHandler) GetStatus(c *gin.Context) {
	intakeID, ok := pathID(c)
	if !ok {
		return
	}
	res, err := ih.intakeService.GetStatus(c.Request.Context(), intakeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": res})
}

// PatchFields accepts partial field writes from either the form UI or the
// chat collaborator. The source decides whether values are stored raw or
// wrapped with provenance.
func (ih *IntakeHandler) PatchFields(c *gin.Context) {
	intakeID, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Fields map[string]any `json:"fields" binding:"required"`
		Source string         `json:"source"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	source := assertion.SourceForm
	if body.Source == string(assertion.SourceChat) {
		source = assertion.SourceChat
	}
	res, err := ih.intakeService.ApplyFieldWrites(c.Request.Context(), intakeID, body.Fields, source)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": res})
}

func (ih *IntakeHandler) SidebarSteps(c *gin.Context) {
	intakeID, ok := pathID(c)
	if !ok {
		return
	}
	steps, err := ih.intakeService.SidebarSteps(c.Request.Context(), intakeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"steps": steps})
}

func (ih *IntakeHandler) Submit(c *gin.Context) {
	intakeID, ok := pathID(c)
	if !ok {
		return
	}
	intake, err := ih.intakeService.Submit(c.Request.Context(), intakeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"intake": intake})
}

func (ih *IntakeHandler) NextPrompts(c *gin.Context) {
	intakeID, ok := pathID(c)
	if !ok {
		return
	}
	next, err := ih.promptService.NextPrompts(c.Request.Context(), intakeID, 3)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompts": next})
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid intake id"})
		return uuid.Nil, false
	}
	return id, true
}
