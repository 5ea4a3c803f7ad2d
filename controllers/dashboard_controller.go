package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/services"
)

// DashboardController serves the composed dashboard view-model.
type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// Get composes theme, plan, streak and insights for the user.
func (dc *DashboardController) Get(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("user lookup failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	view, err := dc.dashboard.Compose(c.Request.Context(), uid, user.GetDisplayName())
	if err != nil {
		config.Logger.Errorw("dashboard composition failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}
