package application

import "strings"

// SectionResponse splits content into sections no longer than maxLength,
// breaking on sentence boundaries so no message ends mid-sentence. A single
// sentence longer than maxLength is hard-wrapped as a last resort.
func SectionResponse(content string, maxLength int) []string {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	if len(content) <= maxLength {
		return []string{content}
	}

	var sections []string
	var section strings.Builder

	for _, sentence := range splitSentences(content) {
		if len(sentence) > maxLength {
			if section.Len() > 0 {
				sections = append(sections, strings.TrimSpace(section.String()))
				section.Reset()
			}
			sections = append(sections, hardWrap(sentence, maxLength)...)
			continue
		}

		if section.Len()+len(sentence)+1 > maxLength {
			sections = append(sections, strings.TrimSpace(section.String()))
			section.Reset()
		}

		if section.Len() > 0 {
			section.WriteString(" ")
		}
		section.WriteString(sentence)
	}

	if section.Len() > 0 {
		sections = append(sections, strings.TrimSpace(section.String()))
	}

	return sections
}

// splitSentences splits text after sentence-ending punctuation followed by
// whitespace.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(text)-1; i++ {
		switch text[i] {
		case '.', '!', '?':
			if !isSpace(text[i+1]) {
				continue
			}
			sentences = append(sentences, text[start:i+1])
			j := i + 1
			for j < len(text) && isSpace(text[j]) {
				j++
			}
			start = j
			i = j - 1
		}
	}

	if start < len(text) {
		sentences = append(sentences, text[start:])
	}

	return sentences
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

func hardWrap(text string, maxLength int) []string {
	var chunks []string
	for len(text) > maxLength {
		chunks = append(chunks, text[:maxLength])
		text = text[maxLength:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
