package coverletter

import (
	"strings"
	"testing"

	"github.com/jobmatchai/backend/jobsearch/cv"
	"github.com/jobmatchai/backend/jobsearch/posting"
)

func TestBuildPromptIncludesToneAndJob(t *testing.T) {
	profile := &cv.Profile{
		Skills:     []string{"Python", "AWS"},
		Experience: []string{"Engineer at Acme"},
		Education:  []string{"BSc Computer Science"},
	}
	job := &posting.Job{Title: "Developer", Company: "Widget Ltd", Description: "Build things"}

	prompt := buildPrompt(profile, job, "technical")
	for _, want := range []string{"Developer", "Widget Ltd", "Python, AWS", "precise technical language"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPromptUnknownToneDefaultsToProfessional(t *testing.T) {
	prompt := buildPrompt(&cv.Profile{}, &posting.Job{}, "sarcastic")
	if !strings.Contains(prompt, toneInstructions["professional"]) {
		t.Error("unknown tone should fall back to professional")
	}
}

func TestBuildPromptTruncatesLongInputs(t *testing.T) {
	profile := &cv.Profile{
		Experience: []string{strings.Repeat("x", 400), strings.Repeat("y", 400), "never used"},
	}
	job := &posting.Job{Description: strings.Repeat("d", 1000)}

	prompt := buildPrompt(profile, job, "professional")
	if strings.Contains(prompt, "never used") {
		t.Error("only the first two experience entries should be used")
	}
	if strings.Count(prompt, "d") > 600 {
		t.Error("description was not truncated")
	}
}

func TestFallbackLetter(t *testing.T) {
	profile := &cv.Profile{Skills: []string{"Go", "SQL"}}
	job := &posting.Job{Title: "Backend Engineer", Company: "Acme"}

	letter := fallbackLetter(profile, job)
	if !strings.Contains(letter, "Backend Engineer") || !strings.Contains(letter, "Acme") {
		t.Error("fallback letter not personalized")
	}
	if !strings.Contains(letter, "Go, SQL") {
		t.Error("fallback letter missing skills")
	}
}

func TestFallbackLetterEmptyJob(t *testing.T) {
	letter := fallbackLetter(&cv.Profile{}, &posting.Job{})
	if !strings.Contains(letter, "this position") || !strings.Contains(letter, "your company") {
		t.Error("fallback letter should use generic placeholders for missing job fields")
	}
}
