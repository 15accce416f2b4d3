package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var (
	errEmptyCompletion = errors.New("llm returned no choices")
	errNoGenerator     = errors.New("llm disabled: no api key configured")
)

// ModelConfig selects the model and sampling for one prompt.
type ModelConfig struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, cfg ModelConfig) (string, error)
}

// OpenAIGenerator talks to any OpenAI-compatible chat completion endpoint.
type OpenAIGenerator struct {
	client *openai.Client
}

// NewOpenAIGenerator returns nil when apiKey is empty so callers can
// fall back without a network round trip.
func NewOpenAIGenerator(apiKey, baseURL string) *OpenAIGenerator {
	if apiKey == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGenerator{client: openai.NewClientWithConfig(cfg)}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, cfg ModelConfig) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// stripCodeFence removes a surrounding ```json ... ``` block if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
