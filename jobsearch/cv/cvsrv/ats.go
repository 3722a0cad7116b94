package cvsrv

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jobmatchai/backend/jobsearch/cv"
)

// Action verbs ATS rubrics value in experience bullets.
var actionVerbs = []string{
	"achieved", "improved", "managed", "led", "developed", "created",
	"increased", "decreased", "implemented", "launched", "designed",
	"built", "established", "streamlined", "optimized", "delivered",
	"spearheaded", "initiated", "coordinated", "executed", "generated",
}

// Generic high-value keywords used when the caller supplies none.
var genericKeywords = []string{
	"python", "java", "javascript", "sql", "aws", "azure",
	"machine learning", "data analysis", "project management",
	"leadership", "communication", "problem solving",
}

var (
	tableCharsPattern   = regexp.MustCompile(`[|╣═║]`)
	achievementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d+%`),
		regexp.MustCompile(`\$[\d,]+`),
		regexp.MustCompile(`\d+\s*(million|thousand|billion)`),
		regexp.MustCompile(`increased.*\d+`),
		regexp.MustCompile(`reduced.*\d+`),
		regexp.MustCompile(`saved.*\d+`),
		regexp.MustCompile(`grew.*\d+`),
	}
)

// AnalyzeATS scores a profile against the ATS compatibility rubric and
// returns the score with per-section breakdown and feedback. Pass
// targetKeywords from a job description to score keyword coverage against
// it; nil falls back to the generic keyword set.
func AnalyzeATS(profile *cv.Profile, targetKeywords []string) *cv.ATSResult {
	breakdown := cv.ATSBreakdown{
		Contact:      scoreContact(profile.Contact),
		Formatting:   scoreFormatting(profile.RawText),
		Keywords:     scoreKeywords(profile.RawText, targetKeywords),
		ActionVerbs:  scoreActionVerbs(profile.RawText),
		Structure:    scoreStructure(profile),
		Achievements: scoreAchievements(profile.RawText),
	}

	total := breakdown.Contact + breakdown.Formatting + breakdown.Keywords +
		breakdown.ActionVerbs + breakdown.Structure + breakdown.Achievements

	strengths, improvements := atsFeedback(breakdown, profile)

	return &cv.ATSResult{
		TotalScore:   int(total + 0.5),
		Breakdown:    breakdown,
		Strengths:    strengths,
		Improvements: improvements,
		Grade:        atsGrade(total),
	}
}

// scoreContact: 10 points for complete contact information.
func scoreContact(contact cv.ContactInfo) float64 {
	score := 0.0
	if contact.Email != "" {
		score += 4
	}
	if contact.Phone != "" {
		score += 3
	}
	if contact.LinkedIn != "" {
		score += 3
	}
	return score
}

// scoreFormatting: 20 points for ATS-friendly formatting. Short text or
// table characters usually mean the extractor fought complex layout.
func scoreFormatting(text string) float64 {
	score := 20.0
	if len(text) < 500 {
		score -= 5
	}
	if tableCharsPattern.MatchString(text) {
		score -= 8
	}
	if len(strings.Split(text, "\n")) < 20 {
		score -= 4
	}
	if score < 0 {
		score = 0
	}
	return score
}

// scoreKeywords: 25 points scaled by keyword coverage.
func scoreKeywords(text string, targetKeywords []string) float64 {
	if len(targetKeywords) == 0 {
		targetKeywords = genericKeywords
	}

	lower := strings.ToLower(text)
	found := 0
	for _, kw := range targetKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			found++
		}
	}

	score := float64(found) / float64(len(targetKeywords)) * 25
	if score > 25 {
		score = 25
	}
	return score
}

// scoreActionVerbs: 15 points banded by how many strong verbs appear.
func scoreActionVerbs(text string) float64 {
	lower := strings.ToLower(text)
	count := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			count++
		}
	}

	switch {
	case count >= 10:
		return 15
	case count >= 7:
		return 12
	case count >= 4:
		return 9
	case count >= 2:
		return 6
	default:
		return 3
	}
}

// scoreStructure: 15 points for having the expected sections.
func scoreStructure(profile *cv.Profile) float64 {
	score := 0.0
	if profile.Contact.Email != "" || profile.Contact.Phone != "" || profile.Contact.LinkedIn != "" {
		score += 3
	}
	if len(profile.Summary) > 50 {
		score += 3
	}
	if len(profile.Experience) > 0 {
		score += 4
	}
	if len(profile.Education) > 0 {
		score += 3
	}
	if len(profile.Skills) > 0 {
		score += 2
	}
	return score
}

// scoreAchievements: 15 points banded by quantified achievement mentions.
func scoreAchievements(text string) float64 {
	lower := strings.ToLower(text)
	count := 0
	for _, p := range achievementPatterns {
		count += len(p.FindAllString(lower, -1))
	}

	switch {
	case count >= 8:
		return 15
	case count >= 5:
		return 12
	case count >= 3:
		return 9
	case count >= 1:
		return 6
	default:
		return 2
	}
}

func atsFeedback(b cv.ATSBreakdown, profile *cv.Profile) (strengths, improvements []string) {
	if b.Contact >= 8 {
		strengths = append(strengths, "Complete contact information provided")
	} else {
		improvements = append(improvements, "Add missing contact info (email, phone, LinkedIn)")
	}

	if b.Formatting >= 15 {
		strengths = append(strengths, "Good ATS-friendly formatting")
	} else {
		improvements = append(improvements, "Simplify formatting - avoid tables, columns, and graphics")
	}

	if b.Keywords >= 18 {
		strengths = append(strengths, "Strong keyword optimization")
	} else {
		improvements = append(improvements, "Add more relevant keywords from job descriptions")
	}

	if b.ActionVerbs >= 10 {
		strengths = append(strengths, "Good use of action verbs")
	} else {
		improvements = append(improvements,
			fmt.Sprintf("Use more action verbs like: %s", strings.Join(actionVerbs[:5], ", ")))
	}

	if b.Structure >= 12 {
		strengths = append(strengths, "Well-structured CV with all key sections")
	} else {
		var missing []string
		if profile.Summary == "" {
			missing = append(missing, "Professional Summary")
		}
		if len(profile.Experience) == 0 {
			missing = append(missing, "Work Experience")
		}
		if len(profile.Education) == 0 {
			missing = append(missing, "Education")
		}
		if len(missing) > 0 {
			improvements = append(improvements,
				fmt.Sprintf("Add these sections: %s", strings.Join(missing, ", ")))
		}
	}

	if b.Achievements >= 10 {
		strengths = append(strengths, "Quantifiable achievements included")
	} else {
		improvements = append(improvements,
			"Add quantifiable achievements (e.g., 'Increased sales by 30%', 'Managed team of 10')")
	}

	return strengths, improvements
}

func atsGrade(score float64) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Very Good"
	case score >= 70:
		return "Good"
	case score >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
