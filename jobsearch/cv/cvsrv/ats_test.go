package cvsrv

import (
	"strings"
	"testing"

	"github.com/jobmatchai/backend/jobsearch/cv"
)

func strongProfile() *cv.Profile {
	text := strings.Repeat("Achieved results. Improved systems. Led teams. Developed software. "+
		"Increased revenue by 20%. Reduced costs by $50,000. Managed 3 million records.\n", 10) +
		strings.Repeat("Implemented, launched, designed, built, established pipelines.\n", 10)
	return &cv.Profile{
		RawText: text,
		Contact: cv.ContactInfo{
			Email:    "jane@example.com",
			Phone:    "415-555-0100",
			LinkedIn: "linkedin.com/in/jane",
		},
		Summary:    strings.Repeat("Experienced engineer delivering measurable results. ", 3),
		Experience: []string{"2019-2023 Engineer"},
		Education:  []string{"BSc, 2016"},
		Skills:     []string{"Python", "SQL", "AWS", "Docker", "Leadership"},
		WordCount:  500,
	}
}

func TestAnalyzeATSStrongProfile(t *testing.T) {
	result := AnalyzeATS(strongProfile(), nil)

	if result.Breakdown.Contact != 10 {
		t.Errorf("contact = %v, want 10", result.Breakdown.Contact)
	}
	if result.Breakdown.Formatting != 20 {
		t.Errorf("formatting = %v, want 20", result.Breakdown.Formatting)
	}
	if result.Breakdown.Structure != 15 {
		t.Errorf("structure = %v, want 15", result.Breakdown.Structure)
	}
	if result.Breakdown.ActionVerbs != 15 {
		t.Errorf("action verbs = %v, want 15", result.Breakdown.ActionVerbs)
	}
	if result.TotalScore < 60 {
		t.Errorf("total = %d for a strong profile", result.TotalScore)
	}
	if len(result.Strengths) == 0 {
		t.Error("expected strengths feedback")
	}
}

func TestAnalyzeATSEmptyProfile(t *testing.T) {
	result := AnalyzeATS(&cv.Profile{RawText: "short"}, nil)

	if result.Breakdown.Contact != 0 {
		t.Errorf("contact = %v, want 0", result.Breakdown.Contact)
	}
	// Short text loses 5, table chars 0, few lines loses 4.
	if result.Breakdown.Formatting != 11 {
		t.Errorf("formatting = %v, want 11", result.Breakdown.Formatting)
	}
	if result.Breakdown.Structure != 0 {
		t.Errorf("structure = %v, want 0", result.Breakdown.Structure)
	}
	if result.Grade != "Needs Improvement" {
		t.Errorf("grade = %q", result.Grade)
	}
	if len(result.Improvements) == 0 {
		t.Error("expected improvement feedback")
	}
}

func TestScoreKeywordsWithTargets(t *testing.T) {
	text := "Built services in Python with SQL storage on AWS."

	score := scoreKeywords(text, []string{"python", "sql", "aws", "kubernetes"})
	want := 3.0 / 4.0 * 25
	if score != want {
		t.Errorf("score = %v, want %v", score, want)
	}

	if s := scoreKeywords(text, []string{"kubernetes"}); s != 0 {
		t.Errorf("no-match score = %v, want 0", s)
	}
}

func TestScoreFormattingTableCharacters(t *testing.T) {
	text := strings.Repeat("line with content here\n", 25) + "col1 | col2 | col3"

	score := scoreFormatting(text)
	if score != 12 {
		t.Errorf("score = %v, want 12", score)
	}
}

func TestScoreAchievementsBands(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"none", "did some work on things", 2},
		{"one", "increased sales by 30%", 6}, // "30%" and "increased...30" both count
		{"many", "grew 10% and saved $5,000 and reduced costs 15% across 2 million users plus increased uptime 99%", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreAchievements(tt.text)
			if tt.name == "one" {
				// Two patterns match the same phrase.
				if got < 6 {
					t.Errorf("score = %v, want >= 6", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestATSGradeBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "Excellent"},
		{85, "Very Good"},
		{75, "Good"},
		{65, "Fair"},
		{30, "Needs Improvement"},
	}

	for _, tt := range tests {
		if got := atsGrade(tt.score); got != tt.want {
			t.Errorf("atsGrade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
