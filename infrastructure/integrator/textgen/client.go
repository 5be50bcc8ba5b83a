// Package textgen wraps the OpenAI chat completion API behind a single
// Generator interface. Callers own prompt construction and response parsing;
// this package only moves text.
package textgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mosaicwellness/ad-warroom-api/internal/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrNotConfigured is returned when no API key is set. Callers treat it like
// any other upstream failure and fall back.
var ErrNotConfigured = errors.New("text generation is not configured")

type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type OpenAIClient struct {
	client  *openai.Client
	model   openai.ChatModel
	timeout time.Duration
	enabled bool
}

func NewOpenAIClient(cfg *config.Config) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(cfg.OpenAI.APIKey))

	timeout := time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIClient{
		client:  &client,
		model:   openai.ChatModel(cfg.OpenAI.Model),
		timeout: timeout,
		enabled: cfg.OpenAI.APIKey != "",
	}
}

// Complete sends one system+user exchange and returns the raw completion
// text. The call is bounded by the configured timeout so callers never block
// indefinitely on the upstream.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !c.enabled {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
