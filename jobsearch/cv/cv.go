package cv

import (
	"strings"
	"time"

	"github.com/jobmatchai/backend/pkg/kernel"
)

// Extraction caps. Section scanning is noisy on real documents, so each
// section keeps only its leading entries.
const (
	MaxSkills            = 20
	MaxExperienceEntries = 5
	MaxEducationEntries  = 3
	MaxSummaryLength     = 500
)

// Profile is the structured view of one parsed résumé document. Created
// once per upload and immutable afterwards; match scoring only reads it.
type Profile struct {
	RawText    string      `json:"raw_text"`
	Contact    ContactInfo `json:"contact"`
	Summary    string      `json:"summary"`
	Experience []string    `json:"experience"`
	Education  []string    `json:"education"`
	Skills     []string    `json:"skills"`
	WordCount  int         `json:"total_word_count"`
}

// ContactInfo holds the contact details found in the document.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// HasSkill reports whether the profile lists a skill, case-insensitively.
func (p *Profile) HasSkill(name string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// MentionsSkill reports whether a skill appears in the skill list or
// anywhere in the raw text, case-insensitively.
func (p *Profile) MentionsSkill(name string) bool {
	if p.HasSkill(name) {
		return true
	}
	lower := strings.ToLower(name)
	if strings.Contains(strings.ToLower(p.RawText), lower) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(p.Skills, " ")), lower)
}

// ComparisonText builds the text the similarity scorer sees for this
// profile: summary, experience entries, the skills block twice (so skills
// carry roughly double term-frequency weight), then education.
func (p *Profile) ComparisonText() string {
	parts := make([]string, 0, len(p.Experience)+len(p.Education)+3)
	if p.Summary != "" {
		parts = append(parts, p.Summary)
	}
	parts = append(parts, p.Experience...)
	if len(p.Skills) > 0 {
		skillsText := strings.Join(p.Skills, " ")
		parts = append(parts, skillsText, skillsText)
	}
	parts = append(parts, p.Education...)
	return strings.Join(parts, " ")
}

// Upload records one résumé file upload with its ATS score.
type Upload struct {
	ID         kernel.UploadID `db:"id" json:"id"`
	Filename   string          `db:"filename" json:"filename"`
	FilePath   string          `db:"file_path" json:"file_path"`
	ATSScore   float64         `db:"ats_score" json:"ats_score"`
	UploadedAt time.Time       `db:"uploaded_at" json:"uploaded_at"`
}

// ATSBreakdown itemizes the ATS rubric. The section maxima sum to 100:
// contact 10, formatting 20, keywords 25, action verbs 15, structure 15,
// achievements 15.
type ATSBreakdown struct {
	Contact      float64 `json:"contact"`
	Formatting   float64 `json:"formatting"`
	Keywords     float64 `json:"keywords"`
	ActionVerbs  float64 `json:"action_verbs"`
	Structure    float64 `json:"structure"`
	Achievements float64 `json:"achievements"`
}

// ATSResult is the compatibility estimate for one profile.
type ATSResult struct {
	TotalScore   int          `json:"total_score"`
	Breakdown    ATSBreakdown `json:"score_breakdown"`
	Strengths    []string     `json:"strengths"`
	Improvements []string     `json:"improvements"`
	Grade        string       `json:"grade"`
}

// Suggestion is one actionable improvement recommendation.
type Suggestion struct {
	Category   string `json:"category"`
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// Advice groups suggestions by priority.
type Advice struct {
	TotalSuggestions  int `json:"total_suggestions"`
	PriorityBreakdown struct {
		Critical   int `json:"critical"`
		Important  int `json:"important"`
		NiceToHave int `json:"nice_to_have"`
	} `json:"priority_breakdown"`
	Critical                  []Suggestion `json:"critical"`
	Important                 []Suggestion `json:"important"`
	NiceToHave                []Suggestion `json:"nice_to_have"`
	EstimatedScoreImprovement int          `json:"estimated_score_improvement"`
}
