package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// NewOpenAIClientWithConfig lets tests point the client at a stub server.
func NewOpenAIClientWithConfig(cfg openai.ClientConfig, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GetReply sends one prompt and returns the trimmed text of the first
// choice. Any provider failure, including an empty choice list, comes back
// as an error; the caller decides what to say instead.
func (c *OpenAIClient) GetReply(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
