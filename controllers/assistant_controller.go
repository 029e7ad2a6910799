package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"dbhotel-backend/services"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	AssistantSvc *services.AssistantService
}

func NewAssistantController(svc *services.AssistantService) *AssistantController {
	return &AssistantController{AssistantSvc: svc}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// POST /api/assistant/chat. One outstanding request at a time; a second
// question while one is pending gets 409, not a queue slot. External failures
// come back as a normal answer payload with status "failed".
func (ctrl *AssistantController) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid chat payload: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Message must not be empty"})
		return
	}

	entry, err := ctrl.AssistantSvc.Ask(req.Message)
	if err != nil {
		if errors.Is(err, services.ErrAssistantBusy) {
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Assistant is busy with another request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /api/assistant/history
func (ctrl *AssistantController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	logs, err := ctrl.AssistantSvc.History(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
