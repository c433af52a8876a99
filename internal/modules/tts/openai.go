package tts

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

// Synthesizer converts text to spoken audio via the OpenAI speech API.
type Synthesizer struct {
	client *openai.Client
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(apiKey string) *Synthesizer {
	return NewSynthesizerFromConfig(openai.DefaultConfig(apiKey))
}

// NewSynthesizerFromConfig creates a Synthesizer from an explicit client
// config, which lets tests point it at a local server.
func NewSynthesizerFromConfig(config openai.ClientConfig) *Synthesizer {
	return &Synthesizer{client: openai.NewClientWithConfig(config)}
}

// Synthesize returns MP3 audio for the given text.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          openai.VoiceNova,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech audio: %w", err)
	}
	return audio, nil
}
