package application

import (
	"context"
	"errors"
	"testing"
)

type fakeCompletionClient struct {
	response string
	err      error
	requests []CompletionRequest
}

func (f *fakeCompletionClient) Complete(
	_ context.Context,
	req CompletionRequest,
) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestChatService_Reply(t *testing.T) {
	client := &fakeCompletionClient{response: "Hello! How can I help?"}
	service := NewChatService(client)

	sections, err := service.Reply(context.Background(), "chan-1", "hi there")
	if err != nil {
		t.Fatalf("Reply() error: %v", err)
	}
	if len(sections) != 1 || sections[0] != "Hello! How can I help?" {
		t.Errorf("sections = %q", sections)
	}

	if len(client.requests) != 1 {
		t.Fatalf("requests = %d, want 1", len(client.requests))
	}
	req := client.requests[0]
	if req.System != personaPrompt {
		t.Errorf("System = %q, want the persona prompt", req.System)
	}
	if req.Prompt != "hi there" {
		t.Errorf("Prompt = %q, want the triggering message only", req.Prompt)
	}
	if req.FrequencyPenalty != 0 {
		t.Errorf("FrequencyPenalty = %v, want 0", req.FrequencyPenalty)
	}
}

func TestChatService_ReplyRateLimited(t *testing.T) {
	client := &fakeCompletionClient{response: "ok"}
	service := NewChatService(client)

	ctx := context.Background()

	// The per-channel burst is 2; the third immediate request is rejected.
	for i := 0; i < 2; i++ {
		if _, err := service.Reply(ctx, "chan-1", "msg"); err != nil {
			t.Fatalf("Reply() %d error: %v", i, err)
		}
	}
	if _, err := service.Reply(ctx, "chan-1", "msg"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}

	// Another channel has its own budget.
	if _, err := service.Reply(ctx, "chan-2", "msg"); err != nil {
		t.Errorf("Reply() on a fresh channel error: %v", err)
	}
}

func TestChatService_Hype(t *testing.T) {
	client := &fakeCompletionClient{response: "HYPE!!!"}
	service := NewChatService(client)

	sections, err := service.Hype(context.Background(), "the weekend")
	if err != nil {
		t.Fatalf("Hype() error: %v", err)
	}
	if len(sections) != 1 || sections[0] != "HYPE!!!" {
		t.Errorf("sections = %q", sections)
	}

	req := client.requests[0]
	if req.System != hypePrompt {
		t.Errorf("System = %q, want the hype prompt", req.System)
	}
	if req.FrequencyPenalty != 2.0 {
		t.Errorf("FrequencyPenalty = %v, want 2.0", req.FrequencyPenalty)
	}
}

func TestChatService_CompletionError(t *testing.T) {
	wantErr := errors.New("upstream unavailable")
	service := NewChatService(&fakeCompletionClient{err: wantErr})

	if _, err := service.Reply(context.Background(), "chan-1", "msg"); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped upstream error", err)
	}
}
