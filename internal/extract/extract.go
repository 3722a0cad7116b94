// Package extract pulls structured hiring signals out of free text with
// pattern rules. No NLP: everything here is regex and keyword matching with
// documented fallback defaults.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultExperienceYears is assumed when a résumé mentions no usable
// experience signal at all. A heuristic default, not a measured value.
const DefaultExperienceYears = 2

var (
	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
		regexp.MustCompile(`(?:experience|exp).*?(\d+)\+?\s*years?`),
	}

	dateRangePattern = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4}|present|current)`)

	requiredPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp).*?(?:required|needed|minimum)`),
		regexp.MustCompile(`(?:required|needed|minimum).*?(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:in|of|with)`),
	}
)

// YearsOfExperience estimates how many years of experience a résumé claims.
// Explicit "N years of experience" statements win (maximum N across all
// matches). Failing that, YYYY-YYYY and YYYY-present ranges are summed with
// a floor of 1. Failing everything, DefaultExperienceYears.
func YearsOfExperience(resumeText string) int {
	text := strings.ToLower(resumeText)

	best := 0
	for _, p := range experiencePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
	}
	if best > 0 {
		return best
	}

	if total, ok := yearsFromRanges(text, time.Now().Year()); ok {
		return total
	}

	return DefaultExperienceYears
}

// yearsFromRanges sums (end-start) across explicit year ranges, treating
// present/current as nowYear. Floored at 1 so a same-year range still counts.
func yearsFromRanges(text string, nowYear int) (int, bool) {
	ranges := dateRangePattern.FindAllStringSubmatch(text, -1)
	if len(ranges) == 0 {
		return 0, false
	}

	total := 0
	for _, r := range ranges {
		start, err := strconv.Atoi(r[1])
		if err != nil {
			continue
		}
		end := nowYear
		if r[2] != "present" && r[2] != "current" {
			end, err = strconv.Atoi(r[2])
			if err != nil {
				continue
			}
		}
		total += end - start
	}
	if total < 1 {
		total = 1
	}
	return total, true
}

// RequiredYears extracts the years of experience a job posting demands.
// Explicit "N+ years ... required" patterns are tried first; otherwise
// seniority keywords imply a level. Returns ok=false when undetermined.
func RequiredYears(jobText string) (int, bool) {
	text := strings.ToLower(jobText)

	for _, p := range requiredPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n, true
			}
		}
	}

	switch {
	case containsAny(text, "senior", "lead", "principal"):
		return 5, true
	case containsAny(text, "mid-level", "intermediate"):
		return 3, true
	case containsAny(text, "junior", "entry", "graduate"):
		return 1, true
	}

	return 0, false
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
