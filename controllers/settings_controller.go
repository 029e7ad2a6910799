package controllers

import (
	"net/http"

	"dbhotel-backend/services"
	"dbhotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	SettingsSvc *services.SettingsService
}

func NewSettingsController(svc *services.SettingsService) *SettingsController {
	return &SettingsController{SettingsSvc: svc}
}

type upsertSettingRequest struct {
	Category string `json:"category"`
	Name     string `json:"name" binding:"required"`
	Value    string `json:"value" binding:"required"`
}

// GET /api/settings
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	settings, err := ctrl.SettingsSvc.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PUT /api/settings
func (ctrl *SettingsController) UpsertSetting(c *gin.Context) {
	var req upsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid setting payload: " + err.Error()})
		return
	}

	setting, err := ctrl.SettingsSvc.Upsert(req.Category, req.Name, req.Value)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, setting)
}
