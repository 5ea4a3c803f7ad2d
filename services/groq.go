package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// GroqClient wraps the OpenAI-compatible Groq endpoint. Chat is a plain-text
// model; JSON is the same model pinned to json_object responses for the
// sentiment classifier.
type GroqClient struct {
	Chat llms.Model
	JSON llms.Model
}

func NewGroqClient(apiKey, apiEndpoint, model string) (*GroqClient, error) {
	chat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq chat client: %w", err)
	}

	jsonModel, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
		openai.WithResponseFormat(&openai.ResponseFormat{
			Type: "json_object",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq JSON client: %w", err)
	}

	return &GroqClient{
		Chat: chat,
		JSON: jsonModel,
	}, nil
}
