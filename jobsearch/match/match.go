// Package match scores job postings against a parsed résumé profile.
package match

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/jobmatchai/backend/internal/extract"
	"github.com/jobmatchai/backend/internal/textsim"
	"github.com/jobmatchai/backend/jobsearch/cv"
	"github.com/jobmatchai/backend/jobsearch/posting"
)

// Component weights. Text similarity dominates, skills matter more than
// seniority fit.
const (
	SimilarityWeight = 0.5
	SkillWeight      = 0.35
	ExperienceWeight = 0.15
)

// Neutral component scores used when a signal cannot be extracted.
const (
	NeutralSkillScore      = 70.0
	NeutralExperienceScore = 75.0
)

// Worker pool size for batch scoring.
const defaultWorkers = 8

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// Scorer scores postings against one profile. The profile's comparison
// text is built once and reused for every posting.
type Scorer struct {
	profile *cv.Profile
	cvText  string
}

func NewScorer(profile *cv.Profile) *Scorer {
	return &Scorer{
		profile: profile,
		cvText:  profile.ComparisonText(),
	}
}

// Score returns a copy of the job with its match score and breakdown set.
// The input job is never mutated.
func (s *Scorer) Score(job posting.Job) posting.Job {
	similarity := textsim.Similarity(s.cvText, jobComparisonText(&job))
	skills := s.skillScore(&job)
	experience := s.experienceScore(&job)

	final := similarity*SimilarityWeight + skills*SkillWeight + experience*ExperienceWeight

	score := round1(final)
	job.MatchScore = &score
	job.Breakdown = &posting.MatchBreakdown{
		Similarity:      round1(similarity),
		SkillMatch:      round1(skills),
		ExperienceMatch: round1(experience),
	}
	return job
}

// ScoreBatch scores every job concurrently and returns them ordered by
// match score, highest first. Jobs with equal scores keep their input
// order.
func (s *Scorer) ScoreBatch(jobs []posting.Job) []posting.Job {
	scored := make([]posting.Job, len(jobs))

	workers := defaultWorkers
	if len(jobs) < workers {
		workers = len(jobs)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				scored[i] = s.Score(jobs[i])
			}
		}()
	}
	for i := range jobs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	sort.SliceStable(scored, func(i, j int) bool {
		return *scored[i].MatchScore > *scored[j].MatchScore
	})
	return scored
}

// jobComparisonText builds the text the similarity scorer sees for a
// posting: title twice (so the title carries roughly double weight), the
// description with HTML tags stripped, then the company name.
func jobComparisonText(job *posting.Job) string {
	parts := make([]string, 0, 4)
	if job.Title != "" {
		parts = append(parts, job.Title, job.Title)
	}
	if job.Description != "" {
		parts = append(parts, htmlTagPattern.ReplaceAllString(job.Description, ""))
	}
	if job.Company != "" {
		parts = append(parts, job.Company)
	}
	return strings.Join(parts, " ")
}

// skillScore is the share of skills the posting asks for that the profile
// mentions, as a percentage. Neutral when the posting names no known
// skills.
func (s *Scorer) skillScore(job *posting.Job) float64 {
	required := extract.RequiredSkills(job.Description)
	if len(required) == 0 {
		return NeutralSkillScore
	}

	matched := 0
	for _, skill := range required {
		if s.profile.MentionsSkill(skill) {
			matched++
		}
	}
	return float64(matched) / float64(len(required)) * 100
}

// experienceScore bands how the profile's years of experience compare to
// what the posting requires. Neutral when the posting states no
// requirement.
func (s *Scorer) experienceScore(job *posting.Job) float64 {
	required, ok := extract.RequiredYears(job.Description)
	if !ok {
		return NeutralExperienceScore
	}

	have := extract.YearsOfExperience(s.profile.RawText)
	if have >= required {
		if have <= required+3 {
			return 100.0
		}
		return 85.0 // overqualified but still good
	}

	switch gap := required - have; {
	case gap <= 1:
		return 80.0
	case gap <= 2:
		return 60.0
	default:
		return 40.0
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
