package application

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/time/rate"
)

// Persona and prompt constants.
const (
	personaPrompt = "You are a friendly secretary named KC."
	hypePrompt    = "Generate really hype emojipasta about"
)

// MaxSectionLength is the Discord message length limit.
const MaxSectionLength = 2000

// ErrRateLimited is returned when a channel has exhausted its request budget.
var ErrRateLimited = errors.New("chat rate limit exceeded")

// CompletionRequest describes a single completion call. Each request stands
// alone; no conversation history is carried between requests.
type CompletionRequest struct {
	System           string
	Prompt           string
	FrequencyPenalty float32
}

// CompletionClient defines the interface for generating chat completions.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ChatService generates persona replies and hype responses, applying a
// per-channel rate limit in front of the upstream API.
type ChatService struct {
	client CompletionClient

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewChatService creates a new ChatService.
func NewChatService(client CompletionClient) *ChatService {
	return &ChatService{
		client:   client,
		limiters: make(map[string]*rate.Limiter),
	}
}

// limiter returns the rate limiter for a channel, creating one if needed.
// Each channel gets one request per 5 seconds with a burst of 2.
func (s *ChatService) limiter(channelID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, ok := s.limiters[channelID]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(0.2), 2)
		s.limiters[channelID] = limiter
	}
	return limiter
}

// Reply generates a persona reply to a single message, split into sections
// that fit Discord's message length limit.
func (s *ChatService) Reply(ctx context.Context, channelID, message string) ([]string, error) {
	if !s.limiter(channelID).Allow() {
		return nil, ErrRateLimited
	}

	content, err := s.client.Complete(ctx, CompletionRequest{
		System: personaPrompt,
		Prompt: message,
	})
	if err != nil {
		return nil, err
	}

	return SectionResponse(content, MaxSectionLength), nil
}

// Hype generates hype emojipasta about the given subject.
func (s *ChatService) Hype(ctx context.Context, about string) ([]string, error) {
	content, err := s.client.Complete(ctx, CompletionRequest{
		System:           hypePrompt,
		Prompt:           about,
		FrequencyPenalty: 2.0,
	})
	if err != nil {
		return nil, err
	}

	return SectionResponse(content, MaxSectionLength), nil
}
