package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/repositories"
	"github.com/sarthak-bhuptani/MindCare/services"
	"github.com/sarthak-bhuptani/MindCare/utils"
	"github.com/sarthak-bhuptani/MindCare/wellness"
)

// JournalController handles journal entry CRUD with sentiment tagging.
type JournalController struct {
	sentiment *services.SentimentService
	themes    repositories.ThemeStore
}

func NewJournalController(sentiment *services.SentimentService, themes repositories.ThemeStore) *JournalController {
	return &JournalController{
		sentiment: sentiment,
		themes:    themes,
	}
}

// List returns the user's entries, newest first.
func (jc *JournalController) List(c *gin.Context) {
	uid := c.GetString("uid")

	var entries []models.JournalEntry
	if err := config.DB.Where("user_id = ?", uid).Order("date desc").Find(&entries).Error; err != nil {
		config.Logger.Errorw("journal query failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load journal entries"})
		return
	}

	responses := make([]models.JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = entries[i].ToResponse()
	}
	c.JSON(http.StatusOK, responses)
}

// Create classifies the entry, then persists it. Classification failure
// degrades to the neutral fallback and never blocks the save.
func (jc *JournalController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sentiment, err := jc.sentiment.Classify(c.Request.Context(), req.Mood, req.Content)
	if err != nil {
		config.Logger.Errorw("sentiment analysis failed, using fallback", "error", err, "uid", uid)
		sentiment = services.FallbackSentiment()
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	entry := models.JournalEntry{
		ID:        utils.GenerateID(),
		UserID:    uid,
		Date:      date,
		Mood:      req.Mood,
		Content:   req.Content,
		Tags:      req.Tags,
		CreatedAt: time.Now(),
	}
	entry.SetSentiment(sentiment)

	if err := config.DB.Create(&entry).Error; err != nil {
		config.Logger.Errorw("journal save failed", "error", err, "uid", uid)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to save journal entry"})
		return
	}

	// Re-skin from the submitted mood label.
	theme := wellness.ResolveTheme(req.Mood)
	if err := jc.themes.Save(c.Request.Context(), uid, theme); err != nil {
		config.Logger.Errorw("theme save failed", "error", err, "uid", uid)
	}

	c.JSON(http.StatusCreated, entry.ToResponse())
}

// Update edits entry content only; sentiment and mood stay as classified.
func (jc *JournalController) Update(c *gin.Context) {
	uid := c.GetString("uid")
	entryID := c.Param("id")

	var req models.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entry models.JournalEntry
	if err := config.DB.Where("id = ? AND user_id = ?", entryID, uid).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found or unauthorized"})
		return
	}

	if err := config.DB.Model(&entry).Update("content", req.Content).Error; err != nil {
		config.Logger.Errorw("journal update failed", "error", err, "uid", uid, "entryID", entryID)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update journal entry"})
		return
	}

	entry.Content = req.Content
	c.JSON(http.StatusOK, entry.ToResponse())
}

// Delete removes an entry owned by the user.
func (jc *JournalController) Delete(c *gin.Context) {
	uid := c.GetString("uid")
	entryID := c.Param("id")

	result := config.DB.Where("id = ? AND user_id = ?", entryID, uid).Delete(&models.JournalEntry{})
	if result.Error != nil {
		config.Logger.Errorw("journal delete failed", "error", result.Error, "uid", uid, "entryID", entryID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete journal entry"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found or unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
