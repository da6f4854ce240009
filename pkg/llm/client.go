// Package llm wraps the OpenAI-compatible chat completion endpoint used for
// structured resume extraction. The model reply is free-form text that is
// only expected, never guaranteed, to contain a JSON object; callers must
// run it through ExtractJSONObject before trusting any of it.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type Client struct {
	api   openai.Client
	model string
}

// NewClient builds a chat-completion client. baseURL overrides the provider
// endpoint when set (gateway deployments); model defaults to gpt-4o-mini.
func NewClient(apiKey, baseURL, model string) *Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{
		api:   openai.NewClient(opts...),
		model: model,
	}
}

// Complete sends a single user prompt and returns the raw reply text.
// Near-deterministic decoding (temperature 0.1) and a generous output budget
// so long candidate histories are not truncated. Failures are terminal; the
// pipeline does not retry.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(c.model),
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(4000),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	return completion.Choices[0].Message.Content, nil
}
