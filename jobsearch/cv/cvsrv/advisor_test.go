package cvsrv

import (
	"strings"
	"testing"

	"github.com/jobmatchai/backend/jobsearch/cv"
)

func TestGenerateAdviceWeakProfile(t *testing.T) {
	profile := &cv.Profile{
		RawText:   "bare text",
		WordCount: 100,
		Skills:    []string{"Python"},
	}
	ats := AnalyzeATS(profile, nil)

	advice := GenerateAdvice(ats, profile, "")

	if len(advice.Critical) == 0 {
		t.Error("weak profile should yield critical suggestions")
	}
	if advice.TotalSuggestions != len(advice.Critical)+len(advice.Important)+len(advice.NiceToHave) {
		t.Error("total does not match suggestion counts")
	}
	if advice.PriorityBreakdown.Critical != len(advice.Critical) {
		t.Error("priority breakdown out of sync")
	}
	if advice.EstimatedScoreImprovement <= 0 {
		t.Error("expected a positive estimated improvement")
	}

	found := false
	for _, s := range advice.Important {
		if s.Category == "Content Length" && strings.Contains(s.Issue, "too short") {
			found = true
		}
	}
	if !found {
		t.Error("expected a too-short content suggestion for a 100-word CV")
	}
}

func TestGenerateAdviceEstimateCapped(t *testing.T) {
	profile := &cv.Profile{RawText: "x", WordCount: 100}
	ats := AnalyzeATS(profile, nil)
	ats.TotalScore = 99

	advice := GenerateAdvice(ats, profile, "")
	if got := 99 + advice.EstimatedScoreImprovement; got > 100 {
		t.Errorf("projected score = %d, want at most 100", got)
	}
}

func TestKeywordSuggestionsByJobTitle(t *testing.T) {
	profile := &cv.Profile{RawText: "I know python already"}

	tests := []struct {
		title    string
		contains string
	}{
		{"Software Engineer", "Docker"},
		{"Data Scientist", "TensorFlow"},
		{"Senior Project Manager", "Scrum"},
		{"Marketing Lead", "SEO"},
		{"Head of Accounting", "Bloomberg"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := keywordSuggestions(profile, tt.title)
			found := false
			for _, kw := range got {
				if kw == tt.contains {
					found = true
				}
				if strings.EqualFold(kw, "python") {
					t.Errorf("%s: suggested a keyword the CV already has", tt.title)
				}
			}
			if !found {
				t.Errorf("%s: suggestions %v missing %q", tt.title, got, tt.contains)
			}
		})
	}
}
