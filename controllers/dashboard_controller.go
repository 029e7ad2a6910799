package controllers

import (
	"net/http"

	"dbhotel-backend/services"
	"dbhotel-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	StatsSvc *services.StatsService
}

func NewDashboardController(svc *services.StatsService) *DashboardController {
	return &DashboardController{StatsSvc: svc}
}

// GET /api/dashboard/summary
func (ctrl *DashboardController) GetSummary(c *gin.Context) {
	summary, err := ctrl.StatsSvc.Dashboard()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
