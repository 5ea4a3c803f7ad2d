package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/repositories"
)

// ProfileController handles the onboarding profile.
type ProfileController struct {
	profiles repositories.ProfileRepository
}

func NewProfileController(profiles repositories.ProfileRepository) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// Get returns the stored profile, or an empty one with defaults applied.
func (pc *ProfileController) Get(c *gin.Context) {
	uid := c.GetString("uid")

	profile, err := pc.profiles.Get(c.Request.Context(), uid)
	if errors.Is(err, repositories.ErrNotFound) {
		profile = &models.UserProfile{UserID: uid, Notifications: "moderate", MorningPerson: true}
	} else if err != nil {
		config.Logger.Errorw("profile query failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// Update saves the onboarding answers.
func (pc *ProfileController) Update(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &models.UserProfile{
		UserID:        uid,
		Nickname:      req.Nickname,
		Role:          req.Role,
		AgeGroup:      req.AgeGroup,
		Challenges:    req.Challenges,
		Motivation:    req.Motivation,
		Commitment:    req.Commitment,
		Notifications: req.Notifications,
		MorningPerson: req.MorningPerson,
		Relaxation:    req.Relaxation,
	}
	if profile.Notifications == "" {
		profile.Notifications = "moderate"
	}

	if err := pc.profiles.Save(c.Request.Context(), profile); err != nil {
		config.Logger.Errorw("profile save failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}
