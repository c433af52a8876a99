package image

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Generator produces images from text prompts via the OpenAI image API.
type Generator struct {
	client *openai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(apiKey string) *Generator {
	return NewGeneratorFromConfig(openai.DefaultConfig(apiKey))
}

// NewGeneratorFromConfig creates a Generator from an explicit client config,
// which lets tests point it at a local server.
func NewGeneratorFromConfig(config openai.ClientConfig) *Generator {
	return &Generator{client: openai.NewClientWithConfig(config)}
}

// Generate renders the prompt as a 1024x1024 PNG and returns the image bytes.
func (g *Generator) Generate(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Size:           openai.CreateImageSize1024x1024,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("no image data returned")
	}

	img, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}
	return img, nil
}
