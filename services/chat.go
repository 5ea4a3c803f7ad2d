package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/sarthak-bhuptani/MindCare/models"
)

const serenePrompt = "You are a compassionate mental health assistant named Serene. " +
	"You provide supportive, empathetic guidance on mental health topics. " +
	"You are not a replacement for professional mental health care. " +
	"For serious concerns, always recommend seeking help from qualified mental health professionals. " +
	"You should respond in a warm, supportive tone while providing evidence-based information when appropriate. " +
	"Keep responses concise and helpful."

// ChatService forwards conversation transcripts to the completion service.
type ChatService struct {
	model llms.Model
}

func NewChatService(client *GroqClient) *ChatService {
	return &ChatService{model: client.Chat}
}

// Complete prepends the fixed system preamble, forwards the transcript and
// returns the assistant's reply text. Errors surface as-is; the caller shows
// a single generic failure notice and the user may resend.
func (s *ChatService) Complete(ctx context.Context, transcript []models.ChatMessage) (string, error) {
	messages := make([]llms.MessageContent, 0, len(transcript)+1)
	messages = append(messages, llms.MessageContent{
		Role:  schema.ChatMessageTypeSystem,
		Parts: []llms.ContentPart{llms.TextPart(serenePrompt)},
	})

	for _, m := range transcript {
		role := schema.ChatMessageTypeHuman
		if m.Role == "assistant" {
			role = schema.ChatMessageTypeAI
		}
		messages = append(messages, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(m.Content)},
		})
	}

	resp, err := s.model.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(800),
	)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Content, nil
}
