package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/warshanks/kcbot/internal/modules/chat/application"
)

const maxCompletionTokens = 1024

// OpenAIClient implements CompletionClient using the OpenAI chat API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAIClient.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return NewOpenAIClientFromConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAIClientFromConfig creates an OpenAIClient from an explicit client
// config, which lets tests point it at a local server.
func NewOpenAIClientFromConfig(config openai.ClientConfig, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Complete generates a chat completion for the given request.
func (c *OpenAIClient) Complete(
	ctx context.Context,
	req application.CompletionRequest,
) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:        maxCompletionTokens,
		FrequencyPenalty: req.FrequencyPenalty,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

var _ application.CompletionClient = (*OpenAIClient)(nil)
