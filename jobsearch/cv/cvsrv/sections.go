package cvsrv

import (
	"regexp"
	"strings"

	"github.com/jobmatchai/backend/jobsearch/cv"
)

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinPattern = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	yearPattern     = regexp.MustCompile(`\d{4}`)
	skillDelimiters = regexp.MustCompile(`[,•|]`)
	educationLine   = regexp.MustCompile(`(?i)\b(university|college|bachelor|master|phd|degree)\b`)
)

var (
	summaryHeadings    = []string{"summary", "objective", "profile", "professional summary"}
	experienceHeadings = []string{"experience", "work history", "employment", "professional experience"}
	educationHeadings  = []string{"education", "academic", "qualifications"}
	skillHeadings      = []string{"skills", "technical skills", "core competencies", "expertise"}
)

// ExtractProfile turns raw document text into a structured profile by
// keyword-delimited section scanning. Heuristic by design; every section
// is capped so noisy matches stay bounded.
func ExtractProfile(text string) *cv.Profile {
	return &cv.Profile{
		RawText:    text,
		Contact:    extractContact(text),
		Summary:    extractSummary(text),
		Experience: extractExperience(text),
		Education:  extractEducation(text),
		Skills:     extractSkills(text),
		WordCount:  len(strings.Fields(text)),
	}
}

func extractContact(text string) cv.ContactInfo {
	return cv.ContactInfo{
		Email:    emailPattern.FindString(text),
		Phone:    phonePattern.FindString(text),
		LinkedIn: linkedinPattern.FindString(text),
	}
}

func extractSummary(text string) string {
	var sb strings.Builder
	capturing := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		if !capturing {
			if containsAnyKeyword(lower, summaryHeadings) {
				capturing = true
			}
			continue
		}
		if containsAnyKeyword(lower, []string{"experience", "education", "skills", "work history"}) {
			break
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			sb.WriteString(trimmed)
			sb.WriteString(" ")
		}
	}

	summary := strings.TrimSpace(sb.String())
	if len(summary) > cv.MaxSummaryLength {
		summary = summary[:cv.MaxSummaryLength]
	}
	return summary
}

func extractExperience(text string) []string {
	var entries []string
	var current string
	capturing := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		if !capturing {
			if containsAnyKeyword(lower, experienceHeadings) {
				capturing = true
			}
			continue
		}
		if containsAnyKeyword(lower, []string{"education", "skills", "certifications"}) {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		// A line carrying a year usually starts a new position.
		if yearPattern.MatchString(trimmed) {
			if current != "" {
				entries = append(entries, strings.TrimSpace(current))
			}
			current = trimmed
		} else if current != "" {
			current += " " + trimmed
		} else {
			current = trimmed
		}
	}
	if current != "" {
		entries = append(entries, strings.TrimSpace(current))
	}

	if len(entries) > cv.MaxExperienceEntries {
		entries = entries[:cv.MaxExperienceEntries]
	}
	return entries
}

func extractEducation(text string) []string {
	var entries []string
	capturing := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		if !capturing {
			if containsAnyKeyword(lower, educationHeadings) {
				capturing = true
			}
			continue
		}
		if containsAnyKeyword(lower, []string{"experience", "skills", "certifications"}) {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if educationLine.MatchString(trimmed) || yearPattern.MatchString(trimmed) {
			entries = append(entries, trimmed)
		}
	}

	if len(entries) > cv.MaxEducationEntries {
		entries = entries[:cv.MaxEducationEntries]
	}
	return entries
}

func extractSkills(text string) []string {
	var skills []string
	capturing := false

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))

		if !capturing {
			if containsAnyKeyword(lower, skillHeadings) {
				capturing = true
			}
			continue
		}
		if containsAnyKeyword(lower, []string{"experience", "education", "certifications", "references"}) {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		for _, candidate := range skillDelimiters.Split(trimmed, -1) {
			if cleaned := strings.TrimSpace(candidate); len(cleaned) > 2 {
				skills = append(skills, cleaned)
			}
		}
	}

	if len(skills) > cv.MaxSkills {
		skills = skills[:cv.MaxSkills]
	}
	return skills
}

func containsAnyKeyword(line string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}
