package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/repositories"
	"github.com/sarthak-bhuptani/MindCare/wellness"
)

// CheckInController records the daily mood check-in.
type CheckInController struct {
	sessions repositories.SessionStore
	themes   repositories.ThemeStore
}

func NewCheckInController(sessions repositories.SessionStore, themes repositories.ThemeStore) *CheckInController {
	return &CheckInController{
		sessions: sessions,
		themes:   themes,
	}
}

// Create saves the check-in session that drives the dashboard, and re-skins
// the theme when a mood label accompanies the score.
func (cc *CheckInController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := &models.CheckInSession{
		MoodScore:  req.MoodScore,
		Note:       req.Note,
		RecordedAt: time.Now(),
	}
	if err := cc.sessions.Save(c.Request.Context(), uid, session); err != nil {
		config.Logger.Errorw("check-in save failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save check-in"})
		return
	}

	theme := wellness.ThemeNeutral
	if req.Mood != "" {
		theme = wellness.ResolveTheme(req.Mood)
		if err := cc.themes.Save(c.Request.Context(), uid, theme); err != nil {
			config.Logger.Errorw("theme save failed", "error", err, "uid", uid)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"moodScore": req.MoodScore,
		"mood":      wellness.LevelName(req.MoodScore),
		"theme":     theme,
	})
}
