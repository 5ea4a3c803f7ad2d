package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthak-bhuptani/MindCare/config"
	"github.com/sarthak-bhuptani/MindCare/models"
	"github.com/sarthak-bhuptani/MindCare/services"
)

// ChatController forwards conversation transcripts to the completion service.
type ChatController struct {
	chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

// SendMessage forwards the transcript and returns the reply text. Failures
// surface as one generic notice; the client keeps its transcript and the
// user may resend.
func (cc *ChatController) SendMessage(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := cc.chat.Complete(c.Request.Context(), req.Messages)
	if err != nil {
		config.Logger.Errorw("chat completion failed", "error", err, "uid", uid)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to process chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": reply})
}
