package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/warshanks/kcbot/internal/modules/chat/application"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return NewOpenAIClientFromConfig(config, "gpt-4")
}

func TestOpenAIClient_Complete(t *testing.T) {
	var gotRequest openai.ChatCompletionRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q, want /v1/chat/completions", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotRequest); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: "Certainly!",
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatalf("failed to encode response: %v", err)
		}
	})

	content, err := client.Complete(context.Background(), application.CompletionRequest{
		System:           "You are a helper.",
		Prompt:           "hello",
		FrequencyPenalty: 2.0,
	})
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if content != "Certainly!" {
		t.Errorf("content = %q, want %q", content, "Certainly!")
	}

	if gotRequest.Model != "gpt-4" {
		t.Errorf("Model = %q, want gpt-4", gotRequest.Model)
	}
	if len(gotRequest.Messages) != 2 {
		t.Fatalf("Messages = %d, want system + user", len(gotRequest.Messages))
	}
	if gotRequest.Messages[0].Role != openai.ChatMessageRoleSystem ||
		gotRequest.Messages[0].Content != "You are a helper." {
		t.Errorf("system message = %+v", gotRequest.Messages[0])
	}
	if gotRequest.Messages[1].Role != openai.ChatMessageRoleUser ||
		gotRequest.Messages[1].Content != "hello" {
		t.Errorf("user message = %+v", gotRequest.Messages[1])
	}
	if gotRequest.FrequencyPenalty != 2.0 {
		t.Errorf("FrequencyPenalty = %v, want 2.0", gotRequest.FrequencyPenalty)
	}
	if gotRequest.MaxTokens != maxCompletionTokens {
		t.Errorf("MaxTokens = %d, want %d", gotRequest.MaxTokens, maxCompletionTokens)
	}
}

func TestOpenAIClient_CompleteNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	if _, err := client.Complete(context.Background(), application.CompletionRequest{
		Prompt: "hello",
	}); err == nil {
		t.Error("expected an error for a response with no choices")
	}
}

func TestOpenAIClient_CompleteUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	if _, err := client.Complete(context.Background(), application.CompletionRequest{
		Prompt: "hello",
	}); err == nil {
		t.Error("expected an error for an upstream failure")
	}
}
