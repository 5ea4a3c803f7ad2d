package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/models"
)

type UserController struct{}

// GetUser returns the authenticated user's account info.
func (uc *UserController) GetUser(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("user lookup failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": models.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}
