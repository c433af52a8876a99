package application

import (
	"strings"
	"testing"
)

func TestSectionResponse(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		maxLength int
		want      []string
	}{
		{
			name:      "empty content",
			content:   "",
			maxLength: 100,
			want:      nil,
		},
		{
			name:      "fits in one section",
			content:   "Short reply.",
			maxLength: 100,
			want:      []string{"Short reply."},
		},
		{
			name:      "splits on sentence boundary",
			content:   "First sentence here. Second sentence here. Third one.",
			maxLength: 45,
			want:      []string{"First sentence here. Second sentence here.", "Third one."},
		},
		{
			name:      "question and exclamation marks end sentences",
			content:   "Really? Yes! Good.",
			maxLength: 13,
			want:      []string{"Really? Yes!", "Good."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SectionResponse(tt.content, tt.maxLength)
			if len(got) != len(tt.want) {
				t.Fatalf("SectionResponse() = %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("section[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSectionResponse_NeverExceedsLimit(t *testing.T) {
	content := strings.Repeat("This is a sentence that repeats a lot. ", 200)
	sections := SectionResponse(content, MaxSectionLength)

	if len(sections) < 2 {
		t.Fatalf("expected multiple sections, got %d", len(sections))
	}
	for i, section := range sections {
		if len(section) > MaxSectionLength {
			t.Errorf("section %d is %d chars, exceeds %d", i, len(section), MaxSectionLength)
		}
	}
}

func TestSectionResponse_HardWrapsOversizedSentence(t *testing.T) {
	content := strings.Repeat("a", 250)
	sections := SectionResponse(content, 100)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	for i, section := range sections {
		if len(section) > 100 {
			t.Errorf("section %d is %d chars, exceeds 100", i, len(section))
		}
	}
}
