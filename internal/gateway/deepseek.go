package gateway

import (
	"context"
	"fmt"

	"github.com/go-deepseek/deepseek"
	"github.com/go-deepseek/deepseek/request"

	"horizon/internal/config"
)

// DeepSeekCompleter implements Completer over the DeepSeek chat API.
type DeepSeekCompleter struct {
	client      deepseek.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewDeepSeekCompleter builds a completer from the AI configuration and
// a resolved credential.
func NewDeepSeekCompleter(apiKey string, cfg config.AIConfig) (*DeepSeekCompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := deepseek.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create DeepSeek client: %w", err)
	}

	return &DeepSeekCompleter{
		client:      client,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

func (c *DeepSeekCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	messages := []*request.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}

	var temp *float32
	if c.temperature > 0 {
		t := float32(c.temperature)
		temp = &t
	}

	chatReq := &request.ChatCompletionsRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: temp,
		Stream:      false,
	}

	resp, err := c.client.CallChatCompletionsChat(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("DeepSeek API request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("DeepSeek API returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
