package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func newTestSynthesizer(handler http.HandlerFunc) (*Synthesizer, *httptest.Server) {
	server := httptest.NewServer(handler)
	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return NewSynthesizerFromConfig(config), server
}

func TestSynthesize(t *testing.T) {
	want := []byte("fake-mp3-bytes")

	synth, server := newTestSynthesizer(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/speech" {
			t.Errorf("path = %q, want /v1/audio/speech", r.URL.Path)
		}

		var req openai.CreateSpeechRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Input != "hello there" {
			t.Errorf("input = %q, want the submitted text", req.Input)
		}
		if req.Voice != openai.VoiceNova {
			t.Errorf("voice = %q, want %q", req.Voice, openai.VoiceNova)
		}
		if req.ResponseFormat != openai.SpeechResponseFormatMp3 {
			t.Errorf("response format = %q, want mp3", req.ResponseFormat)
		}

		w.Write(want)
	})
	defer server.Close()

	got, err := synth.Synthesize(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Synthesize() error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Synthesize() = %q, want %q", got, want)
	}
}

func TestSynthesize_UpstreamError(t *testing.T) {
	synth, server := newTestSynthesizer(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer server.Close()

	if _, err := synth.Synthesize(context.Background(), "anything"); err == nil {
		t.Error("Synthesize() should surface upstream errors")
	}
}
