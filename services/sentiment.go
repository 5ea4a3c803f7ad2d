package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"

	"github.com/sarthak-bhuptani/MindCare/models"
)

const sentimentPrompt = "Analyze the sentiment of this journal entry. Return ONLY a JSON object with: " +
	"{ score: number (0 to 1, where 1 is very positive), " +
	"label: string (one word sentiment eg: Joyful, Peaceful, Stressed, Low, Neutral), " +
	"analysis: string (one short sentence explaining why) }"

// FallbackSentiment is the fixed neutral default used whenever
// classification fails. Failure must never block entry creation.
func FallbackSentiment() models.Sentiment {
	return models.Sentiment{Score: 0.5, Label: "Neutral", Analysis: "Analysis skipped"}
}

// SentimentService classifies journal entries via the LLM.
type SentimentService struct {
	model llms.Model
}

func NewSentimentService(client *GroqClient) *SentimentService {
	return &SentimentService{model: client.JSON}
}

// Classify returns the sentiment triple for a mood label plus free text. Any
// transport error or deviation from the required response shape is an error;
// the caller substitutes FallbackSentiment and continues.
func (s *SentimentService) Classify(ctx context.Context, mood, content string) (models.Sentiment, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(sentimentPrompt)},
		},
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("Mood: %s. Content: %s", mood, content))},
		},
	}

	resp, err := s.model.GenerateContent(ctx, messages)
	if err != nil {
		return models.Sentiment{}, fmt.Errorf("sentiment generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return models.Sentiment{}, fmt.Errorf("sentiment response contained no choices")
	}

	return parseSentiment(resp.Choices[0].Content)
}

// parseSentiment enforces the exact response shape: score in [0,1], label
// and analysis present.
func parseSentiment(raw string) (models.Sentiment, error) {
	var payload struct {
		Score    *float64 `json:"score"`
		Label    *string  `json:"label"`
		Analysis *string  `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return models.Sentiment{}, fmt.Errorf("sentiment response is not valid JSON: %v", err)
	}
	if payload.Score == nil || payload.Label == nil || payload.Analysis == nil {
		return models.Sentiment{}, fmt.Errorf("sentiment response is missing required fields")
	}
	if *payload.Score < 0 || *payload.Score > 1 {
		return models.Sentiment{}, fmt.Errorf("sentiment score %v out of range", *payload.Score)
	}
	return models.Sentiment{
		Score:    *payload.Score,
		Label:    *payload.Label,
		Analysis: *payload.Analysis,
	}, nil
}
