package extract

import "strings"

// ReferenceSkills is the fixed vocabulary of common technical and soft
// skills matched against job text. Order matters: RequiredSkills reports
// matches in this order, not alphabetically.
var ReferenceSkills = []string{
	"python", "java", "javascript", "c++", "sql", "nosql", "mongodb",
	"react", "angular", "vue", "node.js", "django", "flask",
	"aws", "azure", "gcp", "docker", "kubernetes", "git",
	"machine learning", "data analysis", "ai", "deep learning",
	"agile", "scrum", "jira", "excel", "powerpoint", "communication",
	"leadership", "problem solving", "project management",
}

// RequiredSkills returns the reference skills mentioned in the job text,
// matched case-insensitively as substrings, in reference-vocabulary order.
func RequiredSkills(jobText string) []string {
	text := strings.ToLower(jobText)

	var found []string
	for _, skill := range ReferenceSkills {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}
