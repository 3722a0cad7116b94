package cvsrv

import (
	"fmt"
	"strings"

	"github.com/jobmatchai/backend/jobsearch/cv"
)

// Keyword sets suggested per job family when keyword coverage is weak.
var categoryKeywords = map[string][]string{
	"software_engineer": {"Python", "Java", "JavaScript", "SQL", "Git", "AWS", "Docker", "REST API", "Agile", "CI/CD"},
	"data_scientist":    {"Python", "R", "Machine Learning", "SQL", "Statistics", "TensorFlow", "PyTorch", "Data Visualization", "Pandas", "NumPy"},
	"project_manager":   {"Agile", "Scrum", "Stakeholder Management", "Risk Management", "Budgeting", "JIRA", "Microsoft Project", "Leadership"},
	"marketing":         {"SEO", "Google Analytics", "Content Marketing", "Social Media", "Email Marketing", "Adobe Creative Suite", "Copywriting"},
	"finance":           {"Financial Modeling", "Excel", "Accounting", "Bloomberg", "Risk Analysis", "Financial Reporting", "SAP", "QuickBooks"},
}

var genericSuggestions = []string{"Leadership", "Communication", "Problem Solving", "Project Management", "Team Collaboration"}

// GenerateAdvice turns an ATS result into prioritized, actionable
// suggestions. jobTitle is optional and only steers keyword suggestions.
func GenerateAdvice(ats *cv.ATSResult, profile *cv.Profile, jobTitle string) *cv.Advice {
	advice := &cv.Advice{}
	b := ats.Breakdown

	if b.Contact < 8 {
		advice.Critical = append(advice.Critical, cv.Suggestion{
			Category:   "Contact Information",
			Issue:      "Missing contact details",
			Suggestion: "Add complete contact information: professional email, phone number, and LinkedIn profile at the top of your CV",
		})
	}

	if b.Formatting < 15 {
		advice.Critical = append(advice.Critical, cv.Suggestion{
			Category:   "Formatting",
			Issue:      "ATS may struggle to read your CV",
			Suggestion: "Use simple formatting: no tables, columns, text boxes, or graphics. Use standard fonts (Arial, Calibri, Times New Roman). Stick to bullets and clear section headers.",
		})
	}

	if b.Keywords < 18 {
		missing := keywordSuggestions(profile, jobTitle)
		if len(missing) > 8 {
			missing = missing[:8]
		}
		advice.Important = append(advice.Important, cv.Suggestion{
			Category:   "Keywords",
			Issue:      "Missing important keywords",
			Suggestion: fmt.Sprintf("Add these relevant keywords to your experience/skills sections: %s", strings.Join(missing, ", ")),
		})
	}

	if b.ActionVerbs < 10 {
		advice.Important = append(advice.Important, cv.Suggestion{
			Category:   "Language",
			Issue:      "Weak verb usage",
			Suggestion: "Start bullet points with strong action verbs like: achieved, improved, led, developed, increased, implemented, optimized",
		})
	}

	if b.Structure < 12 {
		if fix := structureFixes(profile); fix != "" {
			advice.Critical = append(advice.Critical, cv.Suggestion{
				Category:   "Structure",
				Issue:      "Missing key sections",
				Suggestion: fix,
			})
		}
	}

	if b.Achievements < 10 {
		advice.Important = append(advice.Important, cv.Suggestion{
			Category:   "Impact",
			Issue:      "Lack of quantifiable achievements",
			Suggestion: `Add numbers and metrics to demonstrate impact. Examples: "Increased sales by 30%", "Managed team of 10", "Reduced costs by $50K annually"`,
		})
	}

	if ats.TotalScore < 60 {
		advice.Critical = append(advice.Critical, cv.Suggestion{
			Category:   "Overall",
			Issue:      "CV needs significant improvement",
			Suggestion: "Consider using a professional CV template and getting feedback from career services or a mentor",
		})
	}

	switch {
	case profile.WordCount < 300:
		advice.Important = append(advice.Important, cv.Suggestion{
			Category:   "Content Length",
			Issue:      "CV is too short",
			Suggestion: "Expand your experience descriptions. Aim for 400-800 words total (1-2 pages).",
		})
	case profile.WordCount > 1200:
		advice.NiceToHave = append(advice.NiceToHave, cv.Suggestion{
			Category:   "Content Length",
			Issue:      "CV is too long",
			Suggestion: "Condense content to 1-2 pages. Focus on most recent and relevant experience.",
		})
	}

	if len(profile.Skills) < 5 {
		advice.Important = append(advice.Important, cv.Suggestion{
			Category:   "Skills",
			Issue:      "Limited skills listed",
			Suggestion: `Add a dedicated "Skills" section with 8-15 relevant technical and soft skills`,
		})
	}

	advice.PriorityBreakdown.Critical = len(advice.Critical)
	advice.PriorityBreakdown.Important = len(advice.Important)
	advice.PriorityBreakdown.NiceToHave = len(advice.NiceToHave)
	advice.TotalSuggestions = len(advice.Critical) + len(advice.Important) + len(advice.NiceToHave)
	advice.EstimatedScoreImprovement = estimateImprovement(ats.TotalScore, advice)

	return advice
}

func keywordSuggestions(profile *cv.Profile, jobTitle string) []string {
	lower := strings.ToLower(jobTitle)

	var suggested []string
	switch {
	case containsAny(lower, "software", "developer", "engineer", "programmer"):
		suggested = categoryKeywords["software_engineer"]
	case containsAny(lower, "data", "scientist", "analyst", "machine learning"):
		suggested = categoryKeywords["data_scientist"]
	case containsAny(lower, "project manager", "program manager", "scrum master"):
		suggested = categoryKeywords["project_manager"]
	case containsAny(lower, "marketing", "brand", "content"):
		suggested = categoryKeywords["marketing"]
	case containsAny(lower, "finance", "accounting", "financial"):
		suggested = categoryKeywords["finance"]
	default:
		suggested = genericSuggestions
	}

	cvText := strings.ToLower(profile.RawText)
	missing := make([]string, 0, len(suggested))
	for _, kw := range suggested {
		if !strings.Contains(cvText, strings.ToLower(kw)) {
			missing = append(missing, kw)
		}
	}
	return missing
}

func containsAny(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func structureFixes(profile *cv.Profile) string {
	var missing []string
	if len(profile.Summary) < 50 {
		missing = append(missing, "Professional Summary (2-3 sentences describing your expertise)")
	}
	if len(profile.Experience) == 0 {
		missing = append(missing, "Work Experience section with job titles, companies, dates, and achievements")
	}
	if len(profile.Education) == 0 {
		missing = append(missing, "Education section with degrees, institutions, and graduation dates")
	}
	if len(profile.Skills) < 5 {
		missing = append(missing, "Skills section listing relevant technical and soft skills")
	}
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf("Add these essential sections: %s", strings.Join(missing, "; "))
}

// Each critical fix is worth roughly 5 points and each important fix 3,
// with the projected score capped at 100.
func estimateImprovement(currentScore int, advice *cv.Advice) int {
	gain := len(advice.Critical)*5 + len(advice.Important)*3
	projected := currentScore + gain
	if projected > 100 {
		projected = 100
	}
	return projected - currentScore
}
