package controllers

import (
	"log"
	"net/http"

	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardSvc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{DashboardSvc: svc}
}

// GET /api/dashboard/metrics
func (ctrl *DashboardController) GetMetrics(c *gin.Context) {
	metrics, err := ctrl.DashboardSvc.GetMetrics()
	if err != nil {
		log.Printf("GetMetrics error: %v", err)
		utils.RespondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, metrics)
}
