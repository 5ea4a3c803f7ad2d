package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/services"
)

// PlanController handles manual plan edits and forced regeneration.
type PlanController struct {
	dashboard *services.DashboardService
}

func NewPlanController(dashboard *services.DashboardService) *PlanController {
	return &PlanController{dashboard: dashboard}
}

// Update replaces the persisted task list in place, so toggles, edits,
// additions and deletions survive reloads.
func (pc *PlanController) Update(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := pc.dashboard.UpdateTasks(c.Request.Context(), uid, req.Tasks)
	if err != nil {
		config.Logger.Errorw("plan update failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rec})
}

// Refresh discards the current plan and generates a fresh one ("AI Refresh").
func (pc *PlanController) Refresh(c *gin.Context) {
	uid := c.GetString("uid")

	plan, err := pc.dashboard.RefreshPlan(c.Request.Context(), uid)
	if err != nil {
		config.Logger.Errorw("plan refresh failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to regenerate plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": plan})
}
