package match

import (
	"testing"

	"github.com/jobmatchai/backend/jobsearch/cv"
	"github.com/jobmatchai/backend/jobsearch/posting"
)

func testProfile() *cv.Profile {
	return &cv.Profile{
		RawText: "Software engineer with 5 years of experience in Python, AWS and Docker. " +
			"Built data pipelines and REST services.",
		Summary:    "Software engineer focused on backend systems",
		Experience: []string{"Senior Developer at Tech Corp building Python services on AWS"},
		Education:  []string{"BSc Computer Science"},
		Skills:     []string{"Python", "AWS", "Docker", "SQL", "Git"},
	}
}

func TestScoreSetsWeightedScore(t *testing.T) {
	scorer := NewScorer(testProfile())

	job := posting.Job{
		Title:       "Python Developer",
		Company:     "Tech Startup",
		Description: "Looking for a Python developer with 3+ years of experience in AWS and Docker",
	}

	scored := scorer.Score(job)
	if scored.MatchScore == nil || scored.Breakdown == nil {
		t.Fatal("score and breakdown must be set")
	}

	b := scored.Breakdown
	want := round1(b.Similarity*SimilarityWeight + b.SkillMatch*SkillWeight + b.ExperienceMatch*ExperienceWeight)
	if *scored.MatchScore != want {
		t.Errorf("score = %v, want %v from breakdown", *scored.MatchScore, want)
	}

	if *scored.MatchScore < 0 || *scored.MatchScore > 100 {
		t.Errorf("score = %v out of range", *scored.MatchScore)
	}

	// 5 years against a 3+ requirement lands in the perfect band.
	if b.ExperienceMatch != 100 {
		t.Errorf("experience = %v, want 100", b.ExperienceMatch)
	}

	// python, aws and docker are all mentioned.
	if b.SkillMatch != 100 {
		t.Errorf("skills = %v, want 100", b.SkillMatch)
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	scorer := NewScorer(testProfile())
	job := posting.Job{Title: "Engineer", Description: "some role"}

	_ = scorer.Score(job)
	if job.MatchScore != nil || job.Breakdown != nil {
		t.Error("input job was mutated")
	}
}

func TestSkillScorePartialMatch(t *testing.T) {
	scorer := NewScorer(&cv.Profile{
		RawText: "I know python and sql",
		Skills:  []string{"Python", "SQL"},
	})

	// Requires python, sql, react, angular: 2 of 4 matched.
	job := posting.Job{Description: "Need python, sql, react and angular skills"}
	if got := scorer.skillScore(&job); got != 50 {
		t.Errorf("skill score = %v, want 50", got)
	}
}

func TestSkillScoreNeutralWithoutRequirements(t *testing.T) {
	scorer := NewScorer(testProfile())

	job := posting.Job{Description: "A role doing interesting work"}
	if got := scorer.skillScore(&job); got != NeutralSkillScore {
		t.Errorf("skill score = %v, want neutral %v", got, NeutralSkillScore)
	}
}

func TestExperienceScoreBands(t *testing.T) {
	tests := []struct {
		name    string
		cvText  string
		jobText string
		want    float64
	}{
		{"no requirement", "5 years of experience", "great role", NeutralExperienceScore},
		{"perfect", "5 years of experience", "3+ years of experience required", 100},
		{"overqualified", "10 years of experience", "3+ years of experience required", 85},
		{"close", "4 years of experience", "senior engineer role", 80},
		{"slightly under", "3 years of experience", "senior engineer role", 60},
		{"under", "2 years of experience", "senior engineer role", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewScorer(&cv.Profile{RawText: tt.cvText})
			job := posting.Job{Description: tt.jobText}
			if got := scorer.experienceScore(&job); got != tt.want {
				t.Errorf("experience score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreBatchSortsDescending(t *testing.T) {
	scorer := NewScorer(testProfile())

	jobs := []posting.Job{
		{Title: "Accountant", Company: "Finance Ltd", Description: "Bookkeeping and audits"},
		{Title: "Python Developer", Company: "Tech Startup", Description: "Python, AWS and Docker, 3+ years of experience"},
		{Title: "Office Manager", Company: "Paper Co", Description: "Front desk duties"},
	}

	scored := scorer.ScoreBatch(jobs)
	if len(scored) != len(jobs) {
		t.Fatalf("scored = %d jobs, want %d", len(scored), len(jobs))
	}
	for i := 1; i < len(scored); i++ {
		if *scored[i-1].MatchScore < *scored[i].MatchScore {
			t.Errorf("not sorted descending at %d: %v < %v", i, *scored[i-1].MatchScore, *scored[i].MatchScore)
		}
	}
	if scored[0].Title != "Python Developer" {
		t.Errorf("best match = %q, want the Python role", scored[0].Title)
	}
}

func TestScoreBatchEmpty(t *testing.T) {
	scorer := NewScorer(testProfile())
	if got := scorer.ScoreBatch(nil); len(got) != 0 {
		t.Errorf("scored = %d jobs, want 0", len(got))
	}
}

func TestJobComparisonTextStripsHTML(t *testing.T) {
	job := posting.Job{
		Title:       "Engineer",
		Description: "<p>Build <b>services</b></p>",
		Company:     "Acme",
	}

	text := jobComparisonText(&job)
	if want := "Engineer Engineer Build services Acme"; text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}
