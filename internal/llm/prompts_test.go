package llm

import (
	"strings"
	"testing"
)

func TestAnalyzePromptEmbedsResumeText(t *testing.T) {
	prompt := AnalyzePrompt("resume body here")
	if !strings.Contains(prompt, "resume body here") {
		t.Fatal("expected resume text in prompt")
	}
	if !strings.Contains(prompt, "2-3 specific improvements") {
		t.Fatalf("unexpected prompt wording: %q", prompt)
	}
}

func TestMatchPromptEmbedsBothTexts(t *testing.T) {
	prompt := MatchPrompt("resume body here", "job description here")
	if !strings.Contains(prompt, "resume body here") {
		t.Fatal("expected resume text in prompt")
	}
	if !strings.Contains(prompt, "job description here") {
		t.Fatal("expected job description in prompt")
	}
	if !strings.Contains(prompt, "match score (0-100)") {
		t.Fatalf("unexpected prompt wording: %q", prompt)
	}
	if strings.Index(prompt, "resume body here") > strings.Index(prompt, "job description here") {
		t.Fatal("expected resume before job description")
	}
}
